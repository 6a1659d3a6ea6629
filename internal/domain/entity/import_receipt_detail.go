package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportReceiptDetail línea de una recepción de compra. Inmutable una vez
// persistida: los ajustes a nivel de detalle no pasan por el motor de
// transiciones, solo los cambios de estado de la cabecera.
type ImportReceiptDetail struct {
	ID              string
	ImportReceiptID string
	ProductID       string
	Quantity        int64           // > 0
	ImportPrice     decimal.Decimal // >= 0
	CreationDate    time.Time
}
