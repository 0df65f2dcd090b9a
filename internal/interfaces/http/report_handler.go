package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/application/reports"
)

// ReportHandler expone el reporte de período.
type ReportHandler struct {
	revenueUC *reports.RevenueUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(revenueUC *reports.RevenueUseCase) *ReportHandler {
	return &ReportHandler{revenueUC: revenueUC}
}

// Summary godoc
// @Summary      Reporte de período: métricas, serie diaria y categorías
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD (default: inicio del mes)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (default: fin del mes)"
// @Success      200  {object}  dto.PeriodReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	var req dto.PeriodReportRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.revenueUC.PeriodReport(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
