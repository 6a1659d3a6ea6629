package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// UserRepository puerto de lectura de usuarios (dueños de pedidos).
type UserRepository interface {
	// GetByID devuelve el usuario o nil si no existe.
	GetByID(id string) (*entity.User, error)
}
