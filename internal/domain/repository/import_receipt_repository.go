package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// ReceiptFilter filtros de listado de recepciones de compra.
type ReceiptFilter struct {
	VendorID string
	Status   entity.ImportReceiptStatus
	IsActive *bool // nil = solo activas (por defecto)
	Limit    int
	Offset   int
}

// ImportReceiptRepository puerto de persistencia de cabeceras de recepción.
type ImportReceiptRepository interface {
	Create(receipt *entity.ImportReceipt) error
	// GetByID devuelve la cabecera o nil si no existe.
	GetByID(id string) (*entity.ImportReceipt, error)
	Update(receipt *entity.ImportReceipt) error
	List(f ReceiptFilter) ([]*entity.ImportReceipt, int, error)
}
