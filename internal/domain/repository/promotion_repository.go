package repository

import "github.com/jhoicas/comercio-api/internal/domain/entity"

// PromotionRepository puerto de lectura de promociones.
type PromotionRepository interface {
	// GetByID devuelve la promoción o nil si no existe.
	GetByID(id string) (*entity.Promotion, error)
}
