package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/comercio-api/internal/application/orders"
	"github.com/jhoicas/comercio-api/internal/application/receipts"
	"github.com/jhoicas/comercio-api/internal/application/stock"
	infrapdf "github.com/jhoicas/comercio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/comercio-api/internal/interfaces/http"
	"github.com/jhoicas/comercio-api/pkg/config"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	itemRepo := postgres.NewOrderItemRepository(pool)
	statusRepo := postgres.NewOrderStatusRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	promoRepo := postgres.NewPromotionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	receiptRepo := postgres.NewImportReceiptRepository(pool)
	detailRepo := postgres.NewImportReceiptDetailRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Estado consumidor de stock: por ID directo, o resuelto por código en el
	// arranque. Sin él el motor de transiciones no puede operar.
	completedStatusID := cfg.Orders.CompletedStatusID
	if completedStatusID == "" {
		status, err := statusRepo.GetByCode(cfg.Orders.CompletedStatusCode)
		if err != nil {
			log.Fatal().Err(err).Msg("resolver estado consumidor de stock")
		}
		if status == nil {
			log.Fatal().
				Str("code", cfg.Orders.CompletedStatusCode).
				Msg("el estado consumidor de stock no existe en el catálogo")
		}
		completedStatusID = status.ID
	}
	log.Info().Str("completed_status_id", completedStatusID).Msg("estado consumidor de stock")

	ledger := stock.NewLedger(log)
	orderUC := orders.NewOrderUseCase(
		txRunner, orderRepo, itemRepo, statusRepo, userRepo, promoRepo, productRepo,
		ledger, completedStatusID, log,
	)
	statusUC := orders.NewStatusUseCase(statusRepo)
	receiptUC := receipts.NewReceiptUseCase(
		txRunner, receiptRepo, detailRepo, vendorRepo, productRepo, ledger, log,
	)

	// PDF: comprobante imprimible de la recepción de compra
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptPDFUC := receipts.NewPDFUseCase(receiptRepo, detailRepo, vendorRepo, productRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:    orderUC,
		StatusUC:   statusUC,
		ReceiptUC:  receiptUC,
		ReceiptPDF: receiptPDFUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
