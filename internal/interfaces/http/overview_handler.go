package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cerveceria-api/internal/application/reports"
)

// OverviewHandler expone los reportes del panel: proyección de stock,
// vencimientos y facturación.
type OverviewHandler struct {
	stockUC   *reports.StockUseCase
	expiryUC  *reports.ExpiryUseCase
	revenueUC *reports.RevenueUseCase
}

// NewOverviewHandler construye el handler.
func NewOverviewHandler(
	stockUC *reports.StockUseCase,
	expiryUC *reports.ExpiryUseCase,
	revenueUC *reports.RevenueUseCase,
) *OverviewHandler {
	return &OverviewHandler{stockUC: stockUC, expiryUC: expiryUC, revenueUC: revenueUC}
}

// LowStock godoc
// @Summary      Productos con stock proyectado negativo
// @Tags         overview
// @Produce      json
// @Success      200  {object}  dto.LowStockReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/overview/low-stock [get]
func (h *OverviewHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.stockUC.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockMatrix godoc
// @Summary      Matriz semanal de stock proyectado
// @Tags         overview
// @Produce      json
// @Param        search  query  string  false  "Filtrar por nombre de producto"
// @Success      200  {object}  dto.StockMatrixDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/overview/stock-matrix [get]
func (h *OverviewHandler) StockMatrix(c *fiber.Ctx) error {
	out, err := h.stockUC.StockMatrix(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Expiry godoc
// @Summary      Pronóstico semanal de vencimientos
// @Tags         overview
// @Produce      json
// @Param        weeks  query  int  false  "Horizonte en semanas"  default(15)
// @Success      200  {object}  dto.ExpiryForecastDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/overview/expiry [get]
func (h *OverviewHandler) Expiry(c *fiber.Ctx) error {
	out, err := h.expiryUC.Forecast(c.Context(), c.QueryInt("weeks", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ShortDated godoc
// @Summary      Lotes que vencen en los próximos 30 días
// @Tags         overview
// @Produce      json
// @Success      200  {object}  dto.ShortDatedReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/overview/short-dated [get]
func (h *OverviewHandler) ShortDated(c *fiber.Ctx) error {
	out, err := h.expiryUC.ShortDated(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Revenue godoc
// @Summary      Facturación del mes y proyección
// @Tags         overview
// @Produce      json
// @Success      200  {object}  dto.RevenueOverviewDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/overview/revenue [get]
func (h *OverviewHandler) Revenue(c *fiber.Ctx) error {
	out, err := h.revenueUC.Overview(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
