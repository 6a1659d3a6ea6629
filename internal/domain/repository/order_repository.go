package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// OrderFilter filtros de listado de pedidos.
type OrderFilter struct {
	UserID        string
	OrderStatusID string
	IsActive      *bool // nil = solo activos (por defecto)
	Limit         int
	Offset        int
}

// OrderRepository puerto de persistencia de cabeceras de pedido.
type OrderRepository interface {
	Create(order *entity.Order) error
	// GetByID devuelve la cabecera o nil si no existe.
	GetByID(id string) (*entity.Order, error)
	// Update persiste los campos mutables de la cabecera (estado incluido).
	Update(order *entity.Order) error
	List(f OrderFilter) ([]*entity.Order, int, error)
}
