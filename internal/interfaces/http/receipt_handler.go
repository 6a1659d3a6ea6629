package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/application/receipts"
)

// ReceiptHandler maneja las peticiones HTTP para recepciones de compra (protegido).
type ReceiptHandler struct {
	uc    *receipts.ReceiptUseCase
	pdfUC *receipts.PDFUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipts.ReceiptUseCase, pdfUC *receipts.PDFUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Crear recepción de compra
// @Description  Con estado COMPLETED el stock de cada producto se suma en la
// @Description  misma transacción que persiste la recepción.
// @Tags         import-receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateImportReceiptRequest  true  "Datos de la recepción"
// @Success      201   {object}  dto.ImportReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/import-receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateImportReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener recepción por ID
// @Tags         import-receipts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.ImportReceiptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/import-receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.FindOne(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recepciones
// @Tags         import-receipts
// @Security     Bearer
// @Produce      json
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Param        vendor_id  query  string  false  "Filtrar por proveedor"
// @Param        status     query  string  false  "Filtrar por estado (PENDING, COMPLETED, CANCELLED)"
// @Success      200  {object}  dto.ImportReceiptListResponse
// @Router       /api/import-receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	var q dto.ReceiptQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	q.DefaultPage()
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar recepción
// @Description  Patch disperso de la cabecera. La transición de estado hacia o
// @Description  desde COMPLETED ajusta el stock en la misma transacción.
// @Tags         import-receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la recepción"
// @Param        body  body  dto.UpdateImportReceiptRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ImportReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/import-receipts/{id} [patch]
func (h *ReceiptHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateImportReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar recepción (borrado lógico)
// @Description  Marca la recepción como inactiva. Nunca revierte stock.
// @Tags         import-receipts
// @Security     Bearer
// @Param        id  path  string  true  "ID de la recepción"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/import-receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPDF godoc
// @Summary      Comprobante PDF de la recepción
// @Tags         import-receipts
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la recepción"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/import-receipts/{id}/pdf [get]
func (h *ReceiptHandler) GetPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, err := h.pdfUC.GeneratePDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="recepcion-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
