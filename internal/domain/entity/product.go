package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// StockQuantity es la única fuente de verdad de disponibilidad: solo los motores
// de pedidos y de recepciones de compra la mutan, siempre dentro de una
// transacción y nunca por debajo de cero.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal // precio de venta actual
	StockQuantity int64           // invariante: >= 0
	IsActive      bool
	CreationDate  time.Time
	ModifiedDate  time.Time
}
