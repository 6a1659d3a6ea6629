// Package stock implementa la primitiva de libro de stock: lectura-modificación-
// escritura de la cantidad en existencia de un producto con invariante de
// no-negatividad, siempre sobre repositorios atados a la transacción activa.
package stock

import (
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

// Ledger aplica deltas sobre el stock de productos. Se invoca una vez por línea
// de pedido o detalle de recepción (nunca en lote) para que un fallo quede
// atribuido al producto exacto que lo causó.
type Ledger struct {
	log *logger.Logger
}

// NewLedger construye el libro de stock.
func NewLedger(log *logger.Logger) *Ledger {
	return &Ledger{log: log}
}

// Adjust lee el stock del producto bloqueando la fila (SELECT FOR UPDATE),
// calcula current+delta y lo persiste. Si delta es negativo y el resultado
// quedaría por debajo de cero retorna InsufficientStockError sin escribir nada;
// el caller debe abortar la transacción completa. Devuelve el stock resultante.
func (l *Ledger) Adjust(products repository.ProductRepository, productID string, delta int64) (int64, error) {
	product, err := products.GetForUpdate(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.NewNotFound("producto", productID)
	}

	newQty := product.StockQuantity + delta
	if delta < 0 && newQty < 0 {
		return 0, &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Required:    -delta,
			Available:   product.StockQuantity,
		}
	}

	if err := products.UpdateStock(product.ID, newQty); err != nil {
		return 0, err
	}

	l.log.Debug().
		Str("product_id", product.ID).
		Int64("delta", delta).
		Int64("stock", newQty).
		Msg("ajuste de stock aplicado")

	return newQty, nil
}
