package orders

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cabecera, líneas y cada fila de
// stock tocada cambian de forma atómica (commit total o rollback total).
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderItemRepository,
		statusRepo repository.OrderStatusRepository,
		userRepo repository.UserRepository,
		promoRepo repository.PromotionRepository,
		productRepo repository.ProductRepository,
	) error) error
}
