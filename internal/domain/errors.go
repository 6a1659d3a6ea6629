package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// NotFoundError indica que una entidad referenciada no existe o está inactiva.
// Compatible con errors.Is(err, ErrNotFound).
type NotFoundError struct {
	Entity string // "pedido", "producto", "proveedor", "estado de pedido", ...
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con ID %s no existe o no está activo", e.Entity, e.ID)
}

// Is permite mapear el error tipado al sentinel ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFound construye un NotFoundError.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InsufficientStockError indica que un decremento dejaría el stock negativo.
// Lleva el producto afectado y las cantidades requerida/disponible para que el
// cliente pueda corregir y reenviar. Compatible con errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Required    int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %q (ID %s): requerido %d, disponible %d",
		e.ProductName, e.ProductID, e.Required, e.Available)
}

// Is permite mapear el error tipado al sentinel ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }
