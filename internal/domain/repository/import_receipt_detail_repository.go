package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// ImportReceiptDetailRepository puerto de persistencia de detalles de recepción.
// Los detalles son inmutables: solo alta y lectura.
type ImportReceiptDetailRepository interface {
	Create(detail *entity.ImportReceiptDetail) error
	// ListByReceipt devuelve los detalles en orden de inserción.
	ListByReceipt(receiptID string) ([]*entity.ImportReceiptDetail, error)
}
