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

	"github.com/jhoicas/cerveceria-api/internal/application/orders"
	"github.com/jhoicas/cerveceria-api/internal/application/reports"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/cerveceria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cerveceria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cerveceria-api/internal/interfaces/http"
	"github.com/jhoicas/cerveceria-api/pkg/config"
	"github.com/jhoicas/cerveceria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.Name, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Component("postgres").Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productionUC := usecase.NewProductionUseCase(productionRepo, productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo, customerRepo)
	submitUC := orders.NewSubmitUseCase(txRunner, productRepo, customerRepo, pdfGenerator, cfg.Report.DefaultUnit)
	stockUC := reports.NewStockUseCase(reportRepo, cfg.Report.StockHorizonWeeks, cfg.Report.DefaultUnit)
	expiryUC := reports.NewExpiryUseCase(reportRepo, cfg.Report.ExpiryWeeks)
	revenueUC := reports.NewRevenueUseCase(reportRepo)

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
		Title:    "Cervecería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		ProductionUC: productionUC,
		SaleUC:       saleUC,
		SubmitUC:     submitUC,
		StockUC:      stockUC,
		ExpiryUC:     expiryUC,
		RevenueUC:    revenueUC,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
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

	log.Info().Msg("servidor detenido")
}
