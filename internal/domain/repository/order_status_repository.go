package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// OrderStatusRepository puerto de lectura del catálogo de estados de pedido.
type OrderStatusRepository interface {
	// GetByID devuelve el estado o nil si no existe.
	GetByID(id string) (*entity.OrderStatus, error)
	// GetByCode devuelve el estado por su código único o nil si no existe.
	GetByCode(code string) (*entity.OrderStatus, error)
	List() ([]*entity.OrderStatus, error)
}
