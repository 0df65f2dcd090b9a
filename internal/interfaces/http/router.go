package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cerveceria-api/internal/application/orders"
	"github.com/jhoicas/cerveceria-api/internal/application/reports"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	ProductionUC *usecase.ProductionUseCase
	SaleUC       *usecase.SaleUseCase
	SubmitUC     *orders.SubmitUseCase
	StockUC      *reports.StockUseCase
	ExpiryUC     *reports.ExpiryUseCase
	RevenueUC    *reports.RevenueUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	api.Get("/categories", productHandler.Categories)

	// Clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Producción (tanda por borrador + CRUD de lotes)
	production := api.Group("/production")
	productionHandler := NewProductionHandler(deps.SubmitUC, deps.ProductionUC)
	production.Post("/", productionHandler.Submit)
	production.Get("/recent", productionHandler.Recent)
	production.Get("/search", productionHandler.Search)
	production.Get("/:id", productionHandler.GetByID)
	production.Put("/:id", productionHandler.Update)
	production.Delete("/:id", productionHandler.Delete)

	// Pedidos (pedido por borrador + CRUD de líneas)
	ordersGroup := api.Group("/orders")
	saleHandler := NewSaleHandler(deps.SubmitUC, deps.SaleUC)
	ordersGroup.Post("/", saleHandler.Submit)
	ordersGroup.Post("/pdf", saleHandler.PDF)
	ordersGroup.Get("/recent", saleHandler.Recent)
	ordersGroup.Get("/search", saleHandler.Search)
	ordersGroup.Get("/:id", saleHandler.GetByID)
	ordersGroup.Put("/:id", saleHandler.Update)
	ordersGroup.Delete("/:id", saleHandler.Delete)

	// Panel
	overview := api.Group("/overview")
	overviewHandler := NewOverviewHandler(deps.StockUC, deps.ExpiryUC, deps.RevenueUC)
	overview.Get("/low-stock", overviewHandler.LowStock)
	overview.Get("/stock-matrix", overviewHandler.StockMatrix)
	overview.Get("/expiry", overviewHandler.Expiry)
	overview.Get("/short-dated", overviewHandler.ShortDated)
	overview.Get("/revenue", overviewHandler.Revenue)

	// Reportes
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.RevenueUC)
	reportsGroup.Get("/summary", reportHandler.Summary)
}
