package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.OrderStatusRepository = (*OrderStatusRepo)(nil)

// OrderStatusRepo implementación de OrderStatusRepository sobre PostgreSQL (usable con pool o tx).
type OrderStatusRepo struct {
	q Querier
}

// NewOrderStatusRepository construye el adaptador del catálogo de estados. Pasar pool o tx (Querier).
func NewOrderStatusRepository(q Querier) *OrderStatusRepo {
	return &OrderStatusRepo{q: q}
}

const statusColumns = `id, code, name, description, is_active`

func scanStatus(row pgx.Row) (*entity.OrderStatus, error) {
	var s entity.OrderStatus
	if err := row.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &s.IsActive); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID obtiene un estado por ID. Devuelve nil si no existe.
func (r *OrderStatusRepo) GetByID(id string) (*entity.OrderStatus, error) {
	query := `SELECT ` + statusColumns + ` FROM order_status WHERE id = $1`
	s, err := scanStatus(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order status: %w", err)
	}
	return s, nil
}

// GetByCode obtiene un estado por su código único. Devuelve nil si no existe.
func (r *OrderStatusRepo) GetByCode(code string) (*entity.OrderStatus, error) {
	query := `SELECT ` + statusColumns + ` FROM order_status WHERE code = $1`
	s, err := scanStatus(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order status by code: %w", err)
	}
	return s, nil
}

// List devuelve el vocabulario completo de estados activos.
func (r *OrderStatusRepo) List() ([]*entity.OrderStatus, error) {
	query := `SELECT ` + statusColumns + ` FROM order_status WHERE is_active ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list order statuses: %w", err)
	}
	defer rows.Close()

	var list []*entity.OrderStatus
	for rows.Next() {
		s, err := scanStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order status: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
