// Package pdf implementa el comprobante imprimible de una recepción de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprobante de recepción  │  Código + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre / contacto / dirección                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Compra | Subtotal               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + estado de la recepción + notas                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/comercio-api/internal/application/receipts"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa receipts.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	receipt *entity.ImportReceipt,
	vendor *entity.Vendor,
	details []receipts.DetailForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de recepción", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vendorRow(vendor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, d := range details {
		m.AddRows(detailRow(d))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(receipt))
	if receipt.Notes != "" {
		m.AddRows(notesRow(receipt.Notes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y código + fecha de la recepción (der).
func headerRow(receipt *entity.ImportReceipt) core.Row {
	code := receipt.ReceiptCode
	if code == "" {
		code = receipt.ID
	}
	fecha := receipt.ImportDate.Format("02/01/2006")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE RECEPCIÓN DE MERCANCÍA", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(code, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// vendorRow: datos del proveedor.
func vendorRow(vendor *entity.Vendor) core.Row {
	contact := vendor.ContactEmail
	if vendor.Phone != "" {
		contact += " · " + vendor.Phone
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Proveedor: "+vendor.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New(contact, props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(vendor.Address, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant.", header)),
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Compra", mergeAlign(header, align.Right))),
		col.New(2).Add(text.New("Subtotal", mergeAlign(header, align.Right))),
	)
}

func detailRow(d receipts.DetailForPDF) core.Row {
	cell := props.Text{Size: 9}
	return row.New(6).Add(
		col.New(2).Add(text.New(strconv.FormatInt(d.Quantity, 10), cell)),
		col.New(6).Add(text.New(d.ProductName, cell)),
		col.New(2).Add(text.New(d.ImportPrice, mergeAlign(cell, align.Right))),
		col.New(2).Add(text.New(d.Subtotal, mergeAlign(cell, align.Right))),
	)
}

func totalsRow(receipt *entity.ImportReceipt) core.Row {
	return row.New(10).Add(
		col.New(7).Add(
			text.New("Estado: "+string(receipt.Status), props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("TOTAL: "+receipt.TotalAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1, Color: colorPrimary,
			}),
		),
	)
}

func notesRow(notes string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Notas: "+notes, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}
