package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order cabecera de un pedido. Las líneas (Items) son inmutables una vez creado
// el pedido; los cambios de estado pasan siempre por el motor de transiciones.
// Un pedido con líneas nunca se borra físicamente (solo IsActive=false) para
// preservar el historial de ajustes de stock.
type Order struct {
	ID              string
	UserID          string
	OrderStatusID   string
	PromotionID     *string // nullable
	TotalAmount     decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
	IsActive        bool
	CreationDate    time.Time
	ModifiedDate    time.Time

	// Relaciones cargadas bajo demanda (no siempre presentes).
	Items  []*OrderItem
	Status *OrderStatus
}
