package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion promoción aplicable a un pedido. Referencia opcional sin semántica
// de stock: el motor de transiciones solo valida su existencia.
type Promotion struct {
	ID           string
	Name         string
	DiscountRate decimal.Decimal // fracción, ej. 0.10 = 10%
	StartDate    time.Time
	EndDate      time.Time
	IsActive     bool
}
