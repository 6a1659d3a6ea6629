package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// VendorRepository puerto de lectura de proveedores.
type VendorRepository interface {
	// GetByID devuelve el proveedor o nil si no existe.
	GetByID(id string) (*entity.Vendor, error)
}
