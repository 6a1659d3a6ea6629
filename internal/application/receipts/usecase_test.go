package receipts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/receipts"
	"github.com/jhoicas/comercio-api/internal/application/stock"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products map[string]*entity.Product
	receipts map[string]*entity.ImportReceipt
	details  map[string][]*entity.ImportReceiptDetail
	vendors  map[string]*entity.Vendor
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*entity.Product{},
		receipts: map[string]*entity.ImportReceipt{},
		details:  map[string][]*entity.ImportReceiptDetail{},
		vendors:  map[string]*entity.Vendor{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.receipts {
		cp := *v
		c.receipts[k] = &cp
	}
	for k, list := range s.details {
		cl := make([]*entity.ImportReceiptDetail, len(list))
		for i, d := range list {
			cp := *d
			cl[i] = &cp
		}
		c.details[k] = cl
	}
	for k, v := range s.vendors {
		cp := *v
		c.vendors[k] = &cp
	}
	return c
}

func (s *memStore) replaceWith(c *memStore) {
	s.products = c.products
	s.receipts = c.receipts
	s.details = c.details
	s.vendors = c.vendors
}

type memReceiptRepo struct{ s *memStore }

func (r memReceiptRepo) Create(rc *entity.ImportReceipt) error {
	cp := *rc
	r.s.receipts[rc.ID] = &cp
	return nil
}

func (r memReceiptRepo) GetByID(id string) (*entity.ImportReceipt, error) {
	rc, ok := r.s.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *rc
	return &cp, nil
}

func (r memReceiptRepo) Update(rc *entity.ImportReceipt) error {
	cp := *rc
	r.s.receipts[rc.ID] = &cp
	return nil
}

func (r memReceiptRepo) List(f repository.ReceiptFilter) ([]*entity.ImportReceipt, int, error) {
	var out []*entity.ImportReceipt
	for _, rc := range r.s.receipts {
		if f.VendorID != "" && rc.VendorID != f.VendorID {
			continue
		}
		if f.Status != "" && rc.Status != f.Status {
			continue
		}
		if f.IsActive == nil && !rc.IsActive {
			continue
		}
		if f.IsActive != nil && rc.IsActive != *f.IsActive {
			continue
		}
		cp := *rc
		out = append(out, &cp)
	}
	return out, len(out), nil
}

type memDetailRepo struct{ s *memStore }

func (r memDetailRepo) Create(d *entity.ImportReceiptDetail) error {
	cp := *d
	r.s.details[d.ImportReceiptID] = append(r.s.details[d.ImportReceiptID], &cp)
	return nil
}

func (r memDetailRepo) ListByReceipt(receiptID string) ([]*entity.ImportReceiptDetail, error) {
	list := r.s.details[receiptID]
	out := make([]*entity.ImportReceiptDetail, len(list))
	for i, d := range list {
		cp := *d
		out[i] = &cp
	}
	return out, nil
}

type memVendorRepo struct{ s *memStore }

func (r memVendorRepo) GetByID(id string) (*entity.Vendor, error) { return r.s.vendors[id], nil }

type memProductRepo struct{ s *memStore }

func (r memProductRepo) GetByID(id string) (*entity.Product, error) { return r.s.products[id], nil }

func (r memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r memProductRepo) UpdateStock(id string, quantity int64) error {
	r.s.products[id].StockQuantity = quantity
	return nil
}

func (r memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

type fakeTxRunner struct{ s *memStore }

func (t fakeTxRunner) RunReceipt(_ context.Context, fn func(
	repository.ImportReceiptRepository,
	repository.ImportReceiptDetailRepository,
	repository.VendorRepository,
	repository.ProductRepository,
) error) error {
	tx := t.s.clone()
	err := fn(memReceiptRepo{tx}, memDetailRepo{tx}, memVendorRepo{tx}, memProductRepo{tx})
	if err != nil {
		return err
	}
	t.s.replaceWith(tx)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func seedStore() *memStore {
	s := newMemStore()
	s.vendors["v1"] = &entity.Vendor{ID: "v1", Name: "Distribuidora Norte", IsActive: true}
	s.products["p1"] = &entity.Product{ID: "p1", Name: "Teclado", Price: decimal.NewFromInt(50), StockQuantity: 10, IsActive: true}
	s.products["p2"] = &entity.Product{ID: "p2", Name: "Mouse", Price: decimal.NewFromInt(20), StockQuantity: 3, IsActive: true}
	return s
}

func newReceiptUC(s *memStore) *receipts.ReceiptUseCase {
	log := logger.Nop()
	return receipts.NewReceiptUseCase(
		fakeTxRunner{s},
		memReceiptRepo{s}, memDetailRepo{s}, memVendorRepo{s}, memProductRepo{s},
		stock.NewLedger(log),
		log,
	)
}

func seedReceipt(s *memStore, status entity.ImportReceiptStatus, details ...*entity.ImportReceiptDetail) *entity.ImportReceipt {
	rc := &entity.ImportReceipt{
		ID:       "r1",
		VendorID: "v1",
		Status:   status,
		IsActive: true,
	}
	s.receipts[rc.ID] = rc
	for _, d := range details {
		d.ImportReceiptID = rc.ID
		s.details[rc.ID] = append(s.details[rc.ID], d)
	}
	return rc
}

func strPtr(v string) *string { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Crear COMPLETED suma stock de inmediato y deriva el total de los detalles.
func TestReceiptCreate_CompletadaSumaStock(t *testing.T) {
	s := seedStore()
	uc := newReceiptUC(s)

	out, err := uc.Create(context.Background(), dto.CreateImportReceiptRequest{
		VendorID: "v1",
		Status:   string(entity.ReceiptStatusCompleted),
		Details: []dto.CreateImportReceiptDetailRequest{
			{ProductID: "p1", Quantity: 5, ImportPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, string(entity.ReceiptStatusCompleted), out.Status)
	assert.True(t, decimal.NewFromInt(50).Equal(out.TotalAmount), "total = 5×10")
	assert.Equal(t, int64(15), s.products["p1"].StockQuantity, "10 + 5 = 15")
}

// Crear PENDING no toca stock: el efecto se difiere a la transición a COMPLETED.
func TestReceiptCreate_PendienteNoTocaStock(t *testing.T) {
	s := seedStore()
	uc := newReceiptUC(s)

	out, err := uc.Create(context.Background(), dto.CreateImportReceiptRequest{
		VendorID: "v1",
		Details: []dto.CreateImportReceiptDetailRequest{
			{ProductID: "p1", Quantity: 5, ImportPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReceiptStatusPending), out.Status, "sin estado indicado nace PENDING")
	assert.Equal(t, int64(10), s.products["p1"].StockQuantity)
}

// Producto inexistente en un detalle intermedio: ni recepción ni stock parciales.
func TestReceiptCreate_ProductoInexistenteRevierteTodo(t *testing.T) {
	s := seedStore()
	uc := newReceiptUC(s)

	_, err := uc.Create(context.Background(), dto.CreateImportReceiptRequest{
		VendorID: "v1",
		Status:   string(entity.ReceiptStatusCompleted),
		Details: []dto.CreateImportReceiptDetailRequest{
			{ProductID: "p1", Quantity: 5, ImportPrice: decimal.NewFromInt(10)},
			{ProductID: "nope", Quantity: 1, ImportPrice: decimal.NewFromInt(1)},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, s.receipts, "la cabecera no debe persistir")
	assert.Equal(t, int64(10), s.products["p1"].StockQuantity, "el primer detalle no debe dejar stock sumado")
}

func TestReceiptCreate_EstadoInvalido(t *testing.T) {
	s := seedStore()
	uc := newReceiptUC(s)

	_, err := uc.Create(context.Background(), dto.CreateImportReceiptRequest{
		VendorID: "v1",
		Status:   "ARCHIVED",
		Details: []dto.CreateImportReceiptDetailRequest{
			{ProductID: "p1", Quantity: 1, ImportPrice: decimal.NewFromInt(1)},
		},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestReceiptCreate_ProveedorInexistente(t *testing.T) {
	s := seedStore()
	uc := newReceiptUC(s)

	_, err := uc.Create(context.Background(), dto.CreateImportReceiptRequest{
		VendorID: "nope",
		Details: []dto.CreateImportReceiptDetailRequest{
			{ProductID: "p1", Quantity: 1, ImportPrice: decimal.NewFromInt(1)},
		},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptUpdate_CompletarSumaStock(t *testing.T) {
	s := seedStore()
	seedReceipt(s, entity.ReceiptStatusPending,
		&entity.ImportReceiptDetail{ID: "d1", ProductID: "p1", Quantity: 5, ImportPrice: decimal.NewFromInt(10)},
	)
	uc := newReceiptUC(s)

	out, err := uc.Update(context.Background(), "r1", dto.UpdateImportReceiptRequest{
		Status: strPtr(string(entity.ReceiptStatusCompleted)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReceiptStatusCompleted), out.Status)
	assert.Equal(t, int64(15), s.products["p1"].StockQuantity)
}

func TestReceiptUpdate_RevertirDescuentaStock(t *testing.T) {
	s := seedStore()
	s.products["p1"].StockQuantity = 15 // ya sumado al completar
	seedReceipt(s, entity.ReceiptStatusCompleted,
		&entity.ImportReceiptDetail{ID: "d1", ProductID: "p1", Quantity: 5, ImportPrice: decimal.NewFromInt(10)},
	)
	uc := newReceiptUC(s)

	out, err := uc.Update(context.Background(), "r1", dto.UpdateImportReceiptRequest{
		Status: strPtr(string(entity.ReceiptStatusCancelled)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReceiptStatusCancelled), out.Status)
	assert.Equal(t, int64(10), s.products["p1"].StockQuantity, "15 - 5 = 10")
}

// Revertir una recepción cuyo stock ya fue vendido: InsufficientStockError y
// rollback total (estado y stock intactos).
func TestReceiptUpdate_ReversionInsuficienteAborta(t *testing.T) {
	s := seedStore()
	s.products["p1"].StockQuantity = 2 // vendido tras completar la recepción
	seedReceipt(s, entity.ReceiptStatusCompleted,
		&entity.ImportReceiptDetail{ID: "d1", ProductID: "p1", Quantity: 5, ImportPrice: decimal.NewFromInt(10)},
	)
	uc := newReceiptUC(s)

	_, err := uc.Update(context.Background(), "r1", dto.UpdateImportReceiptRequest{
		Status: strPtr(string(entity.ReceiptStatusPending)),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var insErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &insErr))
	assert.Equal(t, "p1", insErr.ProductID)
	assert.Equal(t, int64(5), insErr.Required)
	assert.Equal(t, int64(2), insErr.Available)

	assert.Equal(t, entity.ReceiptStatusCompleted, s.receipts["r1"].Status, "el estado no debe cambiar")
	assert.Equal(t, int64(2), s.products["p1"].StockQuantity, "el stock no debe cambiar")
}

// Reversión parcialmente insuficiente con varios detalles: ninguno queda aplicado.
func TestReceiptUpdate_ReversionMultilineaRevierteTodo(t *testing.T) {
	s := seedStore()
	s.products["p1"].StockQuantity = 20
	s.products["p2"].StockQuantity = 1
	seedReceipt(s, entity.ReceiptStatusCompleted,
		&entity.ImportReceiptDetail{ID: "d1", ProductID: "p1", Quantity: 5, ImportPrice: decimal.NewFromInt(10)},
		&entity.ImportReceiptDetail{ID: "d2", ProductID: "p2", Quantity: 4, ImportPrice: decimal.NewFromInt(5)},
	)
	uc := newReceiptUC(s)

	_, err := uc.Update(context.Background(), "r1", dto.UpdateImportReceiptRequest{
		Status: strPtr(string(entity.ReceiptStatusCancelled)),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, int64(20), s.products["p1"].StockQuantity, "el primer detalle no debe quedar descontado")
	assert.Equal(t, int64(1), s.products["p2"].StockQuantity)
}

// PENDING → CANCELLED no cruza COMPLETED: el stock no se toca.
func TestReceiptUpdate_TransicionNeutraNoTocaStock(t *testing.T) {
	s := seedStore()
	seedReceipt(s, entity.ReceiptStatusPending,
		&entity.ImportReceiptDetail{ID: "d1", ProductID: "p1", Quantity: 5, ImportPrice: decimal.NewFromInt(10)},
	)
	uc := newReceiptUC(s)

	out, err := uc.Update(context.Background(), "r1", dto.UpdateImportReceiptRequest{
		Status: strPtr(string(entity.ReceiptStatusCancelled)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReceiptStatusCancelled), out.Status)
	assert.Equal(t, int64(10), s.products["p1"].StockQuantity)
}

func TestReceiptUpdate_EstadoInvalido(t *testing.T) {
	s := seedStore()
	seedReceipt(s, entity.ReceiptStatusPending)
	uc := newReceiptUC(s)

	_, err := uc.Update(context.Background(), "r1", dto.UpdateImportReceiptRequest{
		Status: strPtr("ARCHIVED"),
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptDelete_NoRevierteStock(t *testing.T) {
	s := seedStore()
	s.products["p1"].StockQuantity = 15
	seedReceipt(s, entity.ReceiptStatusCompleted,
		&entity.ImportReceiptDetail{ID: "d1", ProductID: "p1", Quantity: 5, ImportPrice: decimal.NewFromInt(10)},
	)
	uc := newReceiptUC(s)

	require.NoError(t, uc.Delete(context.Background(), "r1"))
	assert.False(t, s.receipts["r1"].IsActive)
	assert.Equal(t, entity.ReceiptStatusCompleted, s.receipts["r1"].Status, "el estado se conserva")
	assert.Equal(t, int64(15), s.products["p1"].StockQuantity, "el borrado lógico nunca descuenta stock")
}
