package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateImportReceiptDetailRequest línea de una recepción de compra.
type CreateImportReceiptDetailRequest struct {
	ProductID   string          `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	ImportPrice decimal.Decimal `json:"import_price"`
}

// CreateImportReceiptRequest alta de una recepción con sus detalles.
// Status vacío crea la recepción en PENDING; COMPLETED suma stock al crearla.
type CreateImportReceiptRequest struct {
	VendorID    string                             `json:"vendor_id"`
	ReceiptCode string                             `json:"receipt_code"`
	Notes       string                             `json:"notes"`
	ImportDate  *time.Time                         `json:"import_date"`
	Status      string                             `json:"status"`
	Details     []CreateImportReceiptDetailRequest `json:"details"`
}

// UpdateImportReceiptRequest patch disperso de la cabecera. Los detalles no se
// editan por esta vía: los ajustes de stock pasan solo por el cambio de estado.
type UpdateImportReceiptRequest struct {
	ReceiptCode *string    `json:"receipt_code"`
	Notes       *string    `json:"notes"`
	ImportDate  *time.Time `json:"import_date"`
	Status      *string    `json:"status"`
	IsActive    *bool      `json:"is_active"`
}

// ReceiptQuery filtros del listado de recepciones.
type ReceiptQuery struct {
	PageRequest
	VendorID string `query:"vendor_id"`
	Status   string `query:"status"`
	IsActive *bool  `query:"is_active"`
}

// ImportReceiptDetailResponse detalle en respuestas.
type ImportReceiptDetailResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	ImportPrice decimal.Decimal `json:"import_price"`
}

// ImportReceiptResponse recepción con sus relaciones.
type ImportReceiptResponse struct {
	ID           string                        `json:"id"`
	VendorID     string                        `json:"vendor_id"`
	ReceiptCode  string                        `json:"receipt_code"`
	Notes        string                        `json:"notes"`
	TotalAmount  decimal.Decimal               `json:"total_amount"`
	Status       string                        `json:"status"`
	ImportDate   time.Time                     `json:"import_date"`
	IsActive     bool                          `json:"is_active"`
	CreationDate time.Time                     `json:"creation_date"`
	ModifiedDate time.Time                     `json:"modified_date"`
	Details      []ImportReceiptDetailResponse `json:"details"`
}

// ImportReceiptListResponse página de recepciones.
type ImportReceiptListResponse struct {
	PageResponse
	Data []ImportReceiptResponse `json:"data"`
}
