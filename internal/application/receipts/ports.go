package receipts

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de recepciones atados a esa tx. Una recepción nunca queda a
// medias: o se persisten cabecera, detalles y ajustes de stock, o nada.
type TxRunner interface {
	RunReceipt(ctx context.Context, fn func(
		receiptRepo repository.ImportReceiptRepository,
		detailRepo repository.ImportReceiptDetailRepository,
		vendorRepo repository.VendorRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// DetailForPDF detalle enriquecido con el nombre del producto para el documento
// imprimible de la recepción.
type DetailForPDF struct {
	ProductName string
	Quantity    int64
	ImportPrice string
	Subtotal    string
}

// ReceiptPDFGenerator genera la representación imprimible de una recepción.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *entity.ImportReceipt, vendor *entity.Vendor, details []DetailForPDF) ([]byte, error)
}
