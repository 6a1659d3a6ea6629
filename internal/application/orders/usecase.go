package orders

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

// OrderUseCase gestiona el ciclo de vida de pedidos: alta con líneas y, sobre
// todo, el motor de transiciones de estado con su regla de stock. Toda
// transición corre dentro de una transacción (TxRunner) con commit o rollback
// totales: nunca persiste un ajuste parcial de inventario.
type OrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.OrderRepository
	itemRepo    repository.OrderItemRepository
	statusRepo  repository.OrderStatusRepository
	userRepo    repository.UserRepository
	promoRepo   repository.PromotionRepository
	productRepo repository.ProductRepository
	ledger      *stock.Ledger

	// completedStatusID identifica el estado consumidor de stock. Se inyecta
	// desde configuración: entrar a él descuenta inventario, salir de él lo
	// repone. El motor no compara por nombre ni por código.
	completedStatusID string

	log *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	statusRepo repository.OrderStatusRepository,
	userRepo repository.UserRepository,
	promoRepo repository.PromotionRepository,
	productRepo repository.ProductRepository,
	ledger *stock.Ledger,
	completedStatusID string,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:          txRunner,
		orderRepo:         orderRepo,
		itemRepo:          itemRepo,
		statusRepo:        statusRepo,
		userRepo:          userRepo,
		promoRepo:         promoRepo,
		productRepo:       productRepo,
		ledger:            ledger,
		completedStatusID: completedStatusID,
		log:               log,
	}
}

// Create da de alta un pedido con sus líneas. El estado inicial es PENDING
// salvo que se indique otro; la creación nunca toca stock (el descuento ocurre
// solo al cruzar hacia el estado consumidor vía Update). TotalAmount se deriva
// de las líneas: cantidad × precio unitario snapshot.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.UserID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("usuario", in.UserID)
	}

	var status *entity.OrderStatus
	if in.OrderStatusID != "" {
		status, err = uc.statusRepo.GetByID(in.OrderStatusID)
	} else {
		status, err = uc.statusRepo.GetByCode(entity.StatusCodePending)
	}
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, domain.NewNotFound("estado de pedido", in.OrderStatusID)
	}

	var promotionID *string
	if in.PromotionID != nil && *in.PromotionID != "" {
		promo, err := uc.promoRepo.GetByID(*in.PromotionID)
		if err != nil {
			return nil, err
		}
		if promo == nil {
			return nil, domain.NewNotFound("promoción", *in.PromotionID)
		}
		promotionID = &promo.ID
	}

	// Validar productos y completar snapshot de precios (solo lectura).
	unitPrices := make(map[string]decimal.Decimal, len(in.Items))
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, domain.NewNotFound("producto", item.ProductID)
		}
		if item.UnitPrice.IsZero() {
			unitPrices[item.ProductID] = product.Price
		} else {
			unitPrices[item.ProductID] = item.UnitPrice
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		OrderStatusID:   status.ID,
		PromotionID:     promotionID,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		IsActive:        true,
		CreationDate:    now,
		ModifiedDate:    now,
	}

	total := decimal.Zero
	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		price := unitPrices[it.ProductID]
		items = append(items, &entity.OrderItem{
			ID:           uuid.New().String(),
			OrderID:      order.ID,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			UnitPrice:    price,
			CreationDate: now,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	order.TotalAmount = total

	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderItemRepository,
		_ repository.OrderStatusRepository,
		_ repository.UserRepository,
		_ repository.PromotionRepository,
		_ repository.ProductRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			if err := itemRepo.Create(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("order_id", order.ID).Str("status", status.Code).Msg("pedido creado")
	return buildOrderResponse(order, items, status), nil
}

// Update aplica un patch disperso sobre el pedido dentro de una transacción.
// Los campos sin semántica de stock se mezclan incondicionalmente; el cambio de
// estado dispara la regla de stock:
//
//   - entrar al estado consumidor desde otro estado descuenta la cantidad de
//     cada línea (InsufficientStockError aborta todo: ningún producto queda
//     parcialmente descontado y el estado no cambia);
//   - salir del estado consumidor repone la cantidad de cada línea; la
//     reposición no tiene guarda superior: si el stock fue ajustado
//     externamente por debajo de la base de la reversa se deja warning y se
//     aplica igual;
//   - cualquier otra transición no toca stock.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	var result *dto.OrderResponse

	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderItemRepository,
		statusRepo repository.OrderStatusRepository,
		userRepo repository.UserRepository,
		promoRepo repository.PromotionRepository,
		productRepo repository.ProductRepository,
	) error {
		order, err := orderRepo.GetByID(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.NewNotFound("pedido", id)
		}
		oldStatusID := order.OrderStatusID

		items, err := itemRepo.ListByOrder(order.ID)
		if err != nil {
			return err
		}

		// Mezcla incondicional de campos sin semántica de stock.
		if in.TotalAmount != nil {
			order.TotalAmount = *in.TotalAmount
		}
		if in.ShippingAddress != nil {
			order.ShippingAddress = *in.ShippingAddress
		}
		if in.PaymentMethod != nil {
			order.PaymentMethod = *in.PaymentMethod
		}
		if in.UserID != nil && *in.UserID != order.UserID {
			user, err := userRepo.GetByID(*in.UserID)
			if err != nil {
				return err
			}
			if user == nil {
				return domain.NewNotFound("usuario", *in.UserID)
			}
			order.UserID = user.ID
		}
		if in.PromotionID != nil {
			if *in.PromotionID == "" {
				order.PromotionID = nil
			} else {
				promo, err := promoRepo.GetByID(*in.PromotionID)
				if err != nil {
					return err
				}
				if promo == nil {
					return domain.NewNotFound("promoción", *in.PromotionID)
				}
				order.PromotionID = &promo.ID
			}
		}

		// Resolver nuevo estado contra el vocabulario.
		newStatusID := oldStatusID
		if in.OrderStatusID != nil && *in.OrderStatusID != oldStatusID {
			st, err := statusRepo.GetByID(*in.OrderStatusID)
			if err != nil {
				return err
			}
			if st == nil {
				return domain.NewNotFound("estado de pedido", *in.OrderStatusID)
			}
			newStatusID = st.ID
			order.OrderStatusID = st.ID
		}

		// Regla de stock: solo cruzar la frontera del estado consumidor muta
		// inventario. Los ajustes van línea a línea en orden de colección.
		switch {
		case newStatusID == uc.completedStatusID && oldStatusID != uc.completedStatusID:
			uc.log.Info().Str("order_id", order.ID).Msg("pedido entra al estado consumidor; descontando stock")
			if len(items) == 0 {
				uc.log.Warn().Str("order_id", order.ID).Msg("pedido sin líneas: no hay stock que descontar")
			}
			for _, item := range items {
				if _, err := uc.ledger.Adjust(productRepo, item.ProductID, -item.Quantity); err != nil {
					return err
				}
			}
		case oldStatusID == uc.completedStatusID && newStatusID != uc.completedStatusID:
			uc.log.Info().Str("order_id", order.ID).Msg("pedido sale del estado consumidor; reponiendo stock")
			for _, item := range items {
				newQty, err := uc.ledger.Adjust(productRepo, item.ProductID, item.Quantity)
				if err != nil {
					return err
				}
				if newQty-item.Quantity < item.Quantity {
					// Stock por debajo de la base de la reversa (ajuste externo
					// desde la entrega). Se repone igualmente.
					uc.log.Warn().
						Str("order_id", order.ID).
						Str("product_id", item.ProductID).
						Int64("quantity", item.Quantity).
						Int64("stock_before", newQty-item.Quantity).
						Msg("reversa con stock por debajo de la base; se aplica de todas formas")
				}
			}
		}

		order.ModifiedDate = time.Now()
		if err := orderRepo.Update(order); err != nil {
			return err
		}

		status, err := statusRepo.GetByID(order.OrderStatusID)
		if err != nil {
			return err
		}
		result = buildOrderResponse(order, items, status)
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("order_id", id).Msg("actualización de pedido revertida")
		return nil, err
	}

	uc.log.Info().Str("order_id", id).Msg("pedido actualizado")
	return result, nil
}

// FindOne devuelve el pedido con líneas y estado, exista activo o no.
func (uc *OrderUseCase) FindOne(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewNotFound("pedido", id)
	}
	items, err := uc.itemRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	status, err := uc.statusRepo.GetByID(order.OrderStatusID)
	if err != nil {
		return nil, err
	}
	return buildOrderResponse(order, items, status), nil
}

// List devuelve una página de pedidos con sus relaciones.
func (uc *OrderUseCase) List(ctx context.Context, q dto.OrderQuery) (*dto.OrderListResponse, error) {
	q.DefaultPage()
	filter := repository.OrderFilter{
		UserID:        q.UserID,
		OrderStatusID: q.OrderStatusID,
		IsActive:      q.IsActive,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
	list, total, err := uc.orderRepo.List(filter)
	if err != nil {
		return nil, err
	}

	statusCache := make(map[string]*entity.OrderStatus)
	resp := &dto.OrderListResponse{
		PageResponse: dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
		Data:         make([]dto.OrderResponse, 0, len(list)),
	}
	for _, order := range list {
		items, err := uc.itemRepo.ListByOrder(order.ID)
		if err != nil {
			return nil, err
		}
		status, ok := statusCache[order.OrderStatusID]
		if !ok {
			status, err = uc.statusRepo.GetByID(order.OrderStatusID)
			if err != nil {
				return nil, err
			}
			statusCache[order.OrderStatusID] = status
		}
		resp.Data = append(resp.Data, *buildOrderResponse(order, items, status))
	}
	return resp, nil
}

// Delete borra lógicamente el pedido (IsActive=false). Nunca revierte stock ni
// elimina líneas: el historial de ajustes queda intacto.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.NewNotFound("pedido", id)
	}
	order.IsActive = false
	order.ModifiedDate = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return err
	}
	uc.log.Info().Str("order_id", id).Msg("pedido desactivado")
	return nil
}

func buildOrderResponse(order *entity.Order, items []*entity.OrderItem, status *entity.OrderStatus) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		PromotionID:     order.PromotionID,
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
		IsActive:        order.IsActive,
		CreationDate:    order.CreationDate,
		ModifiedDate:    order.ModifiedDate,
		Items:           make([]dto.OrderItemResponse, 0, len(items)),
	}
	if status != nil {
		resp.Status = dto.OrderStatusResponse{ID: status.ID, Code: status.Code, Name: status.Name}
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return resp
}
