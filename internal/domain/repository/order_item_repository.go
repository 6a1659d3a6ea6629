package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// OrderItemRepository puerto de persistencia de líneas de pedido.
// Las líneas son inmutables: solo alta y lectura.
type OrderItemRepository interface {
	Create(item *entity.OrderItem) error
	// ListByOrder devuelve las líneas en orden de inserción.
	ListByOrder(orderID string) ([]*entity.OrderItem, error)
}
