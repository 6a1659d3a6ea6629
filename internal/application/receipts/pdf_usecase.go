package receipts

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PDFUseCase genera el documento imprimible de una recepción de compra
// (comprobante para el proveedor y para bodega).
type PDFUseCase struct {
	receiptRepo repository.ImportReceiptRepository
	detailRepo  repository.ImportReceiptDetailRepository
	vendorRepo  repository.VendorRepository
	productRepo repository.ProductRepository
	generator   ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	receiptRepo repository.ImportReceiptRepository,
	detailRepo repository.ImportReceiptDetailRepository,
	vendorRepo repository.VendorRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		receiptRepo: receiptRepo,
		detailRepo:  detailRepo,
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// GeneratePDF arma los datos de la recepción y delega en el generador.
func (uc *PDFUseCase) GeneratePDF(ctx context.Context, receiptID string) ([]byte, error) {
	receipt, err := uc.receiptRepo.GetByID(receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.NewNotFound("recepción", receiptID)
	}
	vendor, err := uc.vendorRepo.GetByID(receipt.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.NewNotFound("proveedor", receipt.VendorID)
	}
	details, err := uc.detailRepo.ListByReceipt(receipt.ID)
	if err != nil {
		return nil, err
	}

	rows := make([]DetailForPDF, 0, len(details))
	for _, d := range details {
		name := d.ProductID
		if product, err := uc.productRepo.GetByID(d.ProductID); err == nil && product != nil {
			name = product.Name
		}
		subtotal := d.ImportPrice.Mul(decimal.NewFromInt(d.Quantity))
		rows = append(rows, DetailForPDF{
			ProductName: name,
			Quantity:    d.Quantity,
			ImportPrice: d.ImportPrice.StringFixed(2),
			Subtotal:    subtotal.StringFixed(2),
		})
	}

	return uc.generator.GenerateReceiptPDF(ctx, receipt, vendor, rows)
}
