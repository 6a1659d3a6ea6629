package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportReceiptStatus estado de una recepción de compra.
type ImportReceiptStatus string

const (
	ReceiptStatusPending   ImportReceiptStatus = "PENDING"   // pendiente, sin efecto en stock
	ReceiptStatusCompleted ImportReceiptStatus = "COMPLETED" // completada, stock ya sumado
	ReceiptStatusCancelled ImportReceiptStatus = "CANCELLED"
)

// Valid indica si el valor pertenece al vocabulario de estados.
func (s ImportReceiptStatus) Valid() bool {
	switch s {
	case ReceiptStatusPending, ReceiptStatusCompleted, ReceiptStatusCancelled:
		return true
	}
	return false
}

// ImportReceipt cabecera de una recepción de mercancía de un proveedor.
// TotalAmount es derivado: suma de cantidad × precio de compra de los detalles.
// El borrado es lógico (IsActive=false) y nunca revierte stock, sin importar el
// estado de la recepción.
type ImportReceipt struct {
	ID           string
	VendorID     string
	ReceiptCode  string
	Notes        string
	TotalAmount  decimal.Decimal
	Status       ImportReceiptStatus
	ImportDate   time.Time
	IsActive     bool
	CreationDate time.Time
	ModifiedDate time.Time

	// Relaciones cargadas bajo demanda.
	Details []*ImportReceiptDetail
	Vendor  *Vendor
}
