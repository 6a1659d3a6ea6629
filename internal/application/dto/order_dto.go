package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest línea de pedido en la creación.
// UnitPrice en cero toma el precio actual del producto como snapshot.
type CreateOrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest alta de un pedido con sus líneas.
// OrderStatusID vacío crea el pedido en el estado inicial (PENDING).
type CreateOrderRequest struct {
	UserID          string                   `json:"user_id"`
	OrderStatusID   string                   `json:"order_status_id"`
	PromotionID     *string                  `json:"promotion_id"`
	ShippingAddress string                   `json:"shipping_address"`
	PaymentMethod   string                   `json:"payment_method"`
	Items           []CreateOrderItemRequest `json:"items"`
}

// UpdateOrderRequest patch disperso de un pedido: solo los campos presentes se
// aplican. PromotionID con cadena vacía quita la promoción del pedido.
// OrderStatusID dispara el motor de transiciones (y su regla de stock).
type UpdateOrderRequest struct {
	UserID          *string          `json:"user_id"`
	OrderStatusID   *string          `json:"order_status_id"`
	PromotionID     *string          `json:"promotion_id"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
	ShippingAddress *string          `json:"shipping_address"`
	PaymentMethod   *string          `json:"payment_method"`
}

// OrderQuery filtros del listado de pedidos.
type OrderQuery struct {
	PageRequest
	UserID        string `query:"user_id"`
	OrderStatusID string `query:"order_status_id"`
	IsActive      *bool  `query:"is_active"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderStatusResponse estado de pedido en respuestas.
type OrderStatusResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// OrderResponse pedido con sus relaciones.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Status          OrderStatusResponse `json:"status"`
	PromotionID     *string             `json:"promotion_id"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	IsActive        bool                `json:"is_active"`
	CreationDate    time.Time           `json:"creation_date"`
	ModifiedDate    time.Time           `json:"modified_date"`
	Items           []OrderItemResponse `json:"items"`
}

// OrderListResponse página de pedidos.
type OrderListResponse struct {
	PageResponse
	Data []OrderResponse `json:"data"`
}
