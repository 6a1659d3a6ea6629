package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/orders"
)

// OrderStatusHandler expone el catálogo de estados de pedido (protegido).
type OrderStatusHandler struct {
	uc *orders.StatusUseCase
}

// NewOrderStatusHandler construye el handler.
func NewOrderStatusHandler(uc *orders.StatusUseCase) *OrderStatusHandler {
	return &OrderStatusHandler{uc: uc}
}

// List godoc
// @Summary      Listar estados de pedido
// @Tags         order-statuses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderStatusResponse
// @Router       /api/order-statuses [get]
func (h *OrderStatusHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
