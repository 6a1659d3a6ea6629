package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// ProductRepository puerto de lectura/escritura de productos.
// GetForUpdate y UpdateStock son el par read-modify-write del libro de stock:
// se usan solo dentro de transacciones.
type ProductRepository interface {
	// GetByID devuelve el producto o nil si no existe.
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock persiste la nueva cantidad en stock de un producto.
	UpdateStock(id string, quantity int64) error
	Create(product *entity.Product) error
}
