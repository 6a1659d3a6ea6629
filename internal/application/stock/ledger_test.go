package stock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/stock"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// fakeProductRepo repositorio de productos en memoria para el libro de stock.
type fakeProductRepo struct {
	products map[string]*entity.Product
	writes   int // llamadas a UpdateStock
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) UpdateStock(id string, quantity int64) error {
	r.products[id].StockQuantity = quantity
	r.writes++
	return nil
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func TestLedger_Adjust_Descuento(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Teclado", StockQuantity: 10, IsActive: true})
	ledger := stock.NewLedger(logger.Nop())

	newQty, err := ledger.Adjust(repo, "p1", -3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), newQty)
	assert.Equal(t, int64(7), repo.products["p1"].StockQuantity)
}

func TestLedger_Adjust_Incremento(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Teclado", StockQuantity: 10, IsActive: true})
	ledger := stock.NewLedger(logger.Nop())

	newQty, err := ledger.Adjust(repo, "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), newQty)
}

// El descuento que dejaría stock negativo no escribe nada y retorna el error
// tipado con requerido/disponible.
func TestLedger_Adjust_StockInsuficiente(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Teclado", StockQuantity: 2, IsActive: true})
	ledger := stock.NewLedger(logger.Nop())

	_, err := ledger.Adjust(repo, "p1", -3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var insErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &insErr))
	assert.Equal(t, "p1", insErr.ProductID)
	assert.Equal(t, int64(3), insErr.Required)
	assert.Equal(t, int64(2), insErr.Available)

	assert.Equal(t, int64(2), repo.products["p1"].StockQuantity, "el stock no debe cambiar")
	assert.Zero(t, repo.writes, "no debe haber escrituras")
}

// Incrementar hacia cero o más nunca falla aunque el stock actual sea bajo.
func TestLedger_Adjust_DescuentoExacto(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Teclado", StockQuantity: 3, IsActive: true})
	ledger := stock.NewLedger(logger.Nop())

	newQty, err := ledger.Adjust(repo, "p1", -3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), newQty, "quedar exactamente en cero es válido")
}

func TestLedger_Adjust_ProductoInexistente(t *testing.T) {
	repo := newFakeProductRepo()
	ledger := stock.NewLedger(logger.Nop())

	_, err := ledger.Adjust(repo, "nope", -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
