package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/comercio-api/internal/application/orders"
	"github.com/jhoicas/comercio-api/internal/application/receipts"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// Ensure TxRunner implements orders.TxRunner y receipts.TxRunner.
var _ orders.TxRunner = (*TxRunner)(nil)
var _ receipts.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. El handle
// transaccional nunca es estado global: cada callback recibe repos atados a la
// tx, de modo que la frontera de la unidad de trabajo queda visible y testeable.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción con los repos del motor de pedidos y hace
// Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	statusRepo repository.OrderStatusRepository,
	userRepo repository.UserRepository,
	promoRepo repository.PromotionRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	itemRepo := NewOrderItemRepository(tx)
	statusRepo := NewOrderStatusRepository(tx)
	userRepo := NewUserRepository(tx)
	promoRepo := NewPromotionRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(orderRepo, itemRepo, statusRepo, userRepo, promoRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReceipt inicia una transacción con los repos del motor de recepciones y
// hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunReceipt(ctx context.Context, fn func(
	receiptRepo repository.ImportReceiptRepository,
	detailRepo repository.ImportReceiptDetailRepository,
	vendorRepo repository.VendorRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	receiptRepo := NewImportReceiptRepository(tx)
	detailRepo := NewImportReceiptDetailRepository(tx)
	vendorRepo := NewVendorRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(receiptRepo, detailRepo, vendorRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
