package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.ImportReceiptDetailRepository = (*ImportReceiptDetailRepo)(nil)

// ImportReceiptDetailRepo implementación de ImportReceiptDetailRepository sobre PostgreSQL (usable con pool o tx).
type ImportReceiptDetailRepo struct {
	q Querier
}

// NewImportReceiptDetailRepository construye el adaptador de detalles. Pasar pool o tx (Querier).
func NewImportReceiptDetailRepository(q Querier) *ImportReceiptDetailRepo {
	return &ImportReceiptDetailRepo{q: q}
}

// Create persiste un detalle de recepción.
func (r *ImportReceiptDetailRepo) Create(detail *entity.ImportReceiptDetail) error {
	query := `
		INSERT INTO import_receipt_details (id, import_receipt_id, product_id, quantity, import_price, creation_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.ImportReceiptID, detail.ProductID, detail.Quantity, detail.ImportPrice, detail.CreationDate,
	)
	if err != nil {
		return fmt.Errorf("insert import receipt detail: %w", err)
	}
	return nil
}

// ListByReceipt devuelve los detalles de una recepción en orden de inserción.
func (r *ImportReceiptDetailRepo) ListByReceipt(receiptID string) ([]*entity.ImportReceiptDetail, error) {
	query := `
		SELECT id, import_receipt_id, product_id, quantity, import_price, creation_date
		FROM import_receipt_details WHERE import_receipt_id = $1 ORDER BY creation_date, id`
	rows, err := r.q.Query(context.Background(), query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list import receipt details: %w", err)
	}
	defer rows.Close()

	var list []*entity.ImportReceiptDetail
	for rows.Next() {
		var d entity.ImportReceiptDetail
		if err := rows.Scan(&d.ID, &d.ImportReceiptID, &d.ProductID, &d.Quantity, &d.ImportPrice, &d.CreationDate); err != nil {
			return nil, fmt.Errorf("scan import receipt detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
