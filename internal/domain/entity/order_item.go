package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem línea de pedido: referencia a producto con snapshot de cantidad y
// precio unitario al momento de la compra. Inmutable una vez persistida.
type OrderItem struct {
	ID           string
	OrderID      string
	ProductID    string
	Quantity     int64 // > 0
	UnitPrice    decimal.Decimal
	CreationDate time.Time
}
