package receipts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/stock"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
	"github.com/jhoicas/comercio-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// ReceiptUseCase gestiona recepciones de compra: alta transaccional con sus
// detalles y el motor de transiciones de estado, espejo invertido del de
// pedidos (COMPLETED suma stock al entrar y lo descuenta al salir).
type ReceiptUseCase struct {
	txRunner    TxRunner
	receiptRepo repository.ImportReceiptRepository
	detailRepo  repository.ImportReceiptDetailRepository
	vendorRepo  repository.VendorRepository
	productRepo repository.ProductRepository
	ledger      *stock.Ledger
	log         *logger.Logger
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	txRunner TxRunner,
	receiptRepo repository.ImportReceiptRepository,
	detailRepo repository.ImportReceiptDetailRepository,
	vendorRepo repository.VendorRepository,
	productRepo repository.ProductRepository,
	ledger *stock.Ledger,
	log *logger.Logger,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		txRunner:    txRunner,
		receiptRepo: receiptRepo,
		detailRepo:  detailRepo,
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
		ledger:      ledger,
		log:         log,
	}
}

// Create da de alta una recepción con sus detalles en una sola transacción.
// La cabecera nace con totalAmount=0 y se acumula detalle a detalle
// (cantidad × precio de compra). Si el estado inicial es COMPLETED el stock se
// suma inmediatamente, detalle a detalle, dentro de la misma transacción: un
// producto inexistente aborta todo (ni recepción parcial ni stock parcial).
func (uc *ReceiptUseCase) Create(ctx context.Context, in dto.CreateImportReceiptRequest) (*dto.ImportReceiptResponse, error) {
	if in.VendorID == "" || len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, d := range in.Details {
		if d.ProductID == "" || d.Quantity <= 0 || d.ImportPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	status := entity.ReceiptStatusPending
	if in.Status != "" {
		status = entity.ImportReceiptStatus(in.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidInput
		}
	}

	vendor, err := uc.vendorRepo.GetByID(in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil || !vendor.IsActive {
		return nil, domain.NewNotFound("proveedor", in.VendorID)
	}

	now := time.Now()
	importDate := now
	if in.ImportDate != nil {
		importDate = *in.ImportDate
	}
	receipt := &entity.ImportReceipt{
		ID:           uuid.New().String(),
		VendorID:     vendor.ID,
		ReceiptCode:  in.ReceiptCode,
		Notes:        in.Notes,
		TotalAmount:  decimal.Zero,
		Status:       status,
		ImportDate:   importDate,
		IsActive:     true,
		CreationDate: now,
		ModifiedDate: now,
	}

	var details []*entity.ImportReceiptDetail

	err = uc.txRunner.RunReceipt(ctx, func(
		receiptRepo repository.ImportReceiptRepository,
		detailRepo repository.ImportReceiptDetailRepository,
		_ repository.VendorRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := receiptRepo.Create(receipt); err != nil {
			return err
		}

		total := decimal.Zero
		for _, d := range in.Details {
			product, err := productRepo.GetByID(d.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.IsActive {
				return domain.NewNotFound("producto", d.ProductID)
			}

			detail := &entity.ImportReceiptDetail{
				ID:              uuid.New().String(),
				ImportReceiptID: receipt.ID,
				ProductID:       product.ID,
				Quantity:        d.Quantity,
				ImportPrice:     d.ImportPrice,
				CreationDate:    now,
			}
			if err := detailRepo.Create(detail); err != nil {
				return err
			}
			details = append(details, detail)
			total = total.Add(d.ImportPrice.Mul(decimal.NewFromInt(d.Quantity)))

			// COMPLETED al crear: el stock se suma ya, no se difiere.
			if receipt.Status == entity.ReceiptStatusCompleted {
				if _, err := uc.ledger.Adjust(productRepo, product.ID, d.Quantity); err != nil {
					return err
				}
			}
		}

		receipt.TotalAmount = total
		return receiptRepo.Update(receipt)
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("creación de recepción revertida")
		return nil, err
	}

	uc.log.Info().Str("receipt_id", receipt.ID).Str("status", string(receipt.Status)).Msg("recepción creada")
	return buildReceiptResponse(receipt, details), nil
}

// Update aplica un patch disperso sobre la cabecera. El cambio de estado
// dispara la regla de stock invertida respecto a pedidos:
//
//   - PENDING/CANCELLED → COMPLETED suma la cantidad de cada detalle (un
//     producto inexistente aborta todo; el incremento en sí no puede violar la
//     no-negatividad);
//   - COMPLETED → PENDING/CANCELLED descuenta cada detalle, con el mismo
//     aborto total por InsufficientStockError que el camino de pedidos;
//   - cualquier otra transición no toca stock.
func (uc *ReceiptUseCase) Update(ctx context.Context, id string, in dto.UpdateImportReceiptRequest) (*dto.ImportReceiptResponse, error) {
	if in.Status != nil && !entity.ImportReceiptStatus(*in.Status).Valid() {
		return nil, domain.ErrInvalidInput
	}

	var result *dto.ImportReceiptResponse

	err := uc.txRunner.RunReceipt(ctx, func(
		receiptRepo repository.ImportReceiptRepository,
		detailRepo repository.ImportReceiptDetailRepository,
		_ repository.VendorRepository,
		productRepo repository.ProductRepository,
	) error {
		receipt, err := receiptRepo.GetByID(id)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.NewNotFound("recepción", id)
		}
		oldStatus := receipt.Status

		details, err := detailRepo.ListByReceipt(receipt.ID)
		if err != nil {
			return err
		}

		if in.ReceiptCode != nil {
			receipt.ReceiptCode = *in.ReceiptCode
		}
		if in.Notes != nil {
			receipt.Notes = *in.Notes
		}
		if in.ImportDate != nil {
			receipt.ImportDate = *in.ImportDate
		}
		if in.IsActive != nil {
			receipt.IsActive = *in.IsActive
		}

		if in.Status != nil {
			newStatus := entity.ImportReceiptStatus(*in.Status)
			if newStatus != oldStatus {
				switch {
				case newStatus == entity.ReceiptStatusCompleted:
					uc.log.Info().Str("receipt_id", receipt.ID).Msg("recepción completada; sumando stock")
					for _, d := range details {
						if _, err := uc.ledger.Adjust(productRepo, d.ProductID, d.Quantity); err != nil {
							return err
						}
					}
				case oldStatus == entity.ReceiptStatusCompleted:
					uc.log.Info().
						Str("receipt_id", receipt.ID).
						Str("new_status", string(newStatus)).
						Msg("recepción deja COMPLETED; revirtiendo stock")
					for _, d := range details {
						if _, err := uc.ledger.Adjust(productRepo, d.ProductID, -d.Quantity); err != nil {
							return err
						}
					}
				}
				receipt.Status = newStatus
			}
		}

		receipt.ModifiedDate = time.Now()
		if err := receiptRepo.Update(receipt); err != nil {
			return err
		}
		result = buildReceiptResponse(receipt, details)
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("receipt_id", id).Msg("actualización de recepción revertida")
		return nil, err
	}

	uc.log.Info().Str("receipt_id", id).Msg("recepción actualizada")
	return result, nil
}

// FindOne devuelve la recepción con sus detalles.
func (uc *ReceiptUseCase) FindOne(ctx context.Context, id string) (*dto.ImportReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.NewNotFound("recepción", id)
	}
	details, err := uc.detailRepo.ListByReceipt(receipt.ID)
	if err != nil {
		return nil, err
	}
	return buildReceiptResponse(receipt, details), nil
}

// List devuelve una página de recepciones con sus detalles.
func (uc *ReceiptUseCase) List(ctx context.Context, q dto.ReceiptQuery) (*dto.ImportReceiptListResponse, error) {
	q.DefaultPage()
	if q.Status != "" && !entity.ImportReceiptStatus(q.Status).Valid() {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.ReceiptFilter{
		VendorID: q.VendorID,
		Status:   entity.ImportReceiptStatus(q.Status),
		IsActive: q.IsActive,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
	list, total, err := uc.receiptRepo.List(filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ImportReceiptListResponse{
		PageResponse: dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
		Data:         make([]dto.ImportReceiptResponse, 0, len(list)),
	}
	for _, receipt := range list {
		details, err := uc.detailRepo.ListByReceipt(receipt.ID)
		if err != nil {
			return nil, err
		}
		resp.Data = append(resp.Data, *buildReceiptResponse(receipt, details))
	}
	return resp, nil
}

// Delete borra lógicamente la recepción. El stock NO se revierte aunque la
// recepción esté COMPLETED: para revertir stock hay que transicionar el estado
// antes de borrar.
func (uc *ReceiptUseCase) Delete(ctx context.Context, id string) error {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return domain.NewNotFound("recepción", id)
	}
	receipt.IsActive = false
	receipt.ModifiedDate = time.Now()
	if err := uc.receiptRepo.Update(receipt); err != nil {
		return err
	}
	uc.log.Info().
		Str("receipt_id", id).
		Str("status", string(receipt.Status)).
		Msg("recepción desactivada; el stock no fue revertido")
	return nil
}

func buildReceiptResponse(receipt *entity.ImportReceipt, details []*entity.ImportReceiptDetail) *dto.ImportReceiptResponse {
	resp := &dto.ImportReceiptResponse{
		ID:           receipt.ID,
		VendorID:     receipt.VendorID,
		ReceiptCode:  receipt.ReceiptCode,
		Notes:        receipt.Notes,
		TotalAmount:  receipt.TotalAmount,
		Status:       string(receipt.Status),
		ImportDate:   receipt.ImportDate,
		IsActive:     receipt.IsActive,
		CreationDate: receipt.CreationDate,
		ModifiedDate: receipt.ModifiedDate,
		Details:      make([]dto.ImportReceiptDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.ImportReceiptDetailResponse{
			ID:          d.ID,
			ProductID:   d.ProductID,
			Quantity:    d.Quantity,
			ImportPrice: d.ImportPrice,
		})
	}
	return resp
}
