package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.ImportReceiptRepository = (*ImportReceiptRepo)(nil)

// ImportReceiptRepo implementación de ImportReceiptRepository sobre PostgreSQL (usable con pool o tx).
type ImportReceiptRepo struct {
	q Querier
}

// NewImportReceiptRepository construye el adaptador de recepciones. Pasar pool o tx (Querier).
func NewImportReceiptRepository(q Querier) *ImportReceiptRepo {
	return &ImportReceiptRepo{q: q}
}

const receiptColumns = `id, vendor_id, receipt_code, notes, total_amount, status, import_date, is_active, creation_date, modified_date`

func scanReceipt(row pgx.Row) (*entity.ImportReceipt, error) {
	var rec entity.ImportReceipt
	err := row.Scan(&rec.ID, &rec.VendorID, &rec.ReceiptCode, &rec.Notes, &rec.TotalAmount,
		&rec.Status, &rec.ImportDate, &rec.IsActive, &rec.CreationDate, &rec.ModifiedDate)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create persiste la cabecera de una recepción.
func (r *ImportReceiptRepo) Create(receipt *entity.ImportReceipt) error {
	query := `
		INSERT INTO import_receipts (id, vendor_id, receipt_code, notes, total_amount, status, import_date, is_active, creation_date, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.VendorID, receipt.ReceiptCode, receipt.Notes, receipt.TotalAmount,
		receipt.Status, receipt.ImportDate, receipt.IsActive, receipt.CreationDate, receipt.ModifiedDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert import receipt: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una recepción por ID. Devuelve nil si no existe.
func (r *ImportReceiptRepo) GetByID(id string) (*entity.ImportReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM import_receipts WHERE id = $1`
	rec, err := scanReceipt(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get import receipt: %w", err)
	}
	return rec, nil
}

// Update persiste los campos mutables de la cabecera.
func (r *ImportReceiptRepo) Update(receipt *entity.ImportReceipt) error {
	query := `
		UPDATE import_receipts
		SET receipt_code = $2, notes = $3, total_amount = $4, status = $5,
		    import_date = $6, is_active = $7, modified_date = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.ReceiptCode, receipt.Notes, receipt.TotalAmount, receipt.Status,
		receipt.ImportDate, receipt.IsActive, receipt.ModifiedDate,
	)
	if err != nil {
		return fmt.Errorf("update import receipt: %w", err)
	}
	return nil
}

// List devuelve una página de cabeceras más el total de filas que cumplen el
// filtro. Por defecto solo recepciones activas, más recientes primero.
func (r *ImportReceiptRepo) List(f repository.ReceiptFilter) ([]*entity.ImportReceipt, int, error) {
	where := []string{}
	args := []any{}

	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}
	args = append(args, active)
	where = append(where, "is_active = $"+strconv.Itoa(len(args)))

	if f.VendorID != "" {
		args = append(args, f.VendorID)
		where = append(where, "vendor_id = $"+strconv.Itoa(len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT count(*) FROM import_receipts WHERE ` + cond
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count import receipts: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := `SELECT ` + receiptColumns + ` FROM import_receipts WHERE ` + cond +
		` ORDER BY creation_date DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list import receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.ImportReceipt
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan import receipt: %w", err)
		}
		list = append(list, rec)
	}
	return list, total, rows.Err()
}
