package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

// PromotionRepo implementación de PromotionRepository sobre PostgreSQL (usable con pool o tx).
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository construye el adaptador de promociones. Pasar pool o tx (Querier).
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

// GetByID obtiene una promoción por ID. Devuelve nil si no existe.
func (r *PromotionRepo) GetByID(id string) (*entity.Promotion, error) {
	query := `
		SELECT id, name, discount_rate, start_date, end_date, is_active
		FROM promotions WHERE id = $1`
	var p entity.Promotion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.DiscountRate, &p.StartDate, &p.EndDate, &p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return &p, nil
}
