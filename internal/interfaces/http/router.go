package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comercio-api/internal/application/orders"
	"github.com/jhoicas/comercio-api/internal/application/receipts"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC    *orders.OrderUseCase
	StatusUC   *orders.StatusUseCase
	ReceiptUC  *receipts.ReceiptUseCase
	ReceiptPDF *receipts.PDFUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Pedidos (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id", orderHandler.Update)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	// Catálogo de estados de pedido (protegido)
	statuses := protected.Group("/order-statuses")
	statusHandler := NewOrderStatusHandler(deps.StatusUC)
	statuses.Get("/", statusHandler.List)

	// Recepciones de compra (protegido)
	receiptsGroup := protected.Group("/import-receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC, deps.ReceiptPDF)
	receiptsGroup.Post("/", receiptHandler.Create)
	receiptsGroup.Get("/", receiptHandler.List)
	receiptsGroup.Get("/:id", receiptHandler.GetByID)
	receiptsGroup.Patch("/:id", receiptHandler.Update)
	receiptsGroup.Delete("/:id", receiptHandler.Delete)
	receiptsGroup.Get("/:id/pdf", receiptHandler.GetPDF)
}
