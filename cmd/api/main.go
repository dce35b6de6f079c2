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

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/auth"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/billing"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/inventory"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/sales"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/usecase"
	infrapdf "github.com/quangthoIT/CRM-Lospec-sub000/internal/infrastructure/pdf"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/quangthoIT/CRM-Lospec-sub000/internal/interfaces/http"
	"github.com/quangthoIT/CRM-Lospec-sub000/pkg/config"
	"github.com/quangthoIT/CRM-Lospec-sub000/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	ledgerRepo := postgres.NewWarehouseTransactionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool, time.Duration(cfg.Sales.TxTimeoutSeconds)*time.Second)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	createOrderUC := sales.NewCreateOrderUseCase(txRunner, productRepo, customerRepo, cfg.Sales.TaxRate, log)
	orderQueryUC := sales.NewOrderQueryUseCase(orderRepo)
	ledgerUC := inventory.NewLedgerUseCase(txRunner, productRepo, ledgerRepo)
	reportUC := usecase.NewReportUseCase(analyticsRepo)

	// PDF: recibo de venta para el cliente
	pdfGenerator := infrapdf.NewReceiptGenerator()
	receiptUC := billing.NewReceiptUseCase(orderRepo, pdfGenerator, cfg.App.Name)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		CreateOrder: createOrderUC,
		OrderQuery:  orderQueryUC,
		ReceiptUC:   receiptUC,
		LedgerUC:    ledgerUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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
