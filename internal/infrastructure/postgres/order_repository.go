package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, user_id, order_status_id, promotion_id, total_amount, shipping_address, payment_method, is_active, creation_date, modified_date`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.UserID, &o.OrderStatusID, &o.PromotionID, &o.TotalAmount,
		&o.ShippingAddress, &o.PaymentMethod, &o.IsActive, &o.CreationDate, &o.ModifiedDate)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste la cabecera de un pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, order_status_id, promotion_id, total_amount, shipping_address, payment_method, is_active, creation_date, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.OrderStatusID, order.PromotionID, order.TotalAmount,
		order.ShippingAddress, order.PaymentMethod, order.IsActive, order.CreationDate, order.ModifiedDate,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido por ID. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// Update persiste los campos mutables de la cabecera.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET user_id = $2, order_status_id = $3, promotion_id = $4, total_amount = $5,
		    shipping_address = $6, payment_method = $7, is_active = $8, modified_date = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.OrderStatusID, order.PromotionID, order.TotalAmount,
		order.ShippingAddress, order.PaymentMethod, order.IsActive, order.ModifiedDate,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// List devuelve una página de cabeceras más el total de filas que cumplen el
// filtro. Por defecto solo pedidos activos, ordenados por fecha de creación
// descendente.
func (r *OrderRepo) List(f repository.OrderFilter) ([]*entity.Order, int, error) {
	where := []string{}
	args := []any{}

	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}
	args = append(args, active)
	where = append(where, "is_active = $"+strconv.Itoa(len(args)))

	if f.UserID != "" {
		args = append(args, f.UserID)
		where = append(where, "user_id = $"+strconv.Itoa(len(args)))
	}
	if f.OrderStatusID != "" {
		args = append(args, f.OrderStatusID)
		where = append(where, "order_status_id = $"+strconv.Itoa(len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT count(*) FROM orders WHERE ` + cond
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + cond +
		` ORDER BY creation_date DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, total, rows.Err()
}
