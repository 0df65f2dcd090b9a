package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

const projectionMonthsAhead = 6 // meses futuros del gráfico de proyección

// RevenueUseCase genera los reportes de facturación: la vista del panel
// (mes en curso + proyección) y el reporte de período con métricas y desglose.
type RevenueUseCase struct {
	reportRepo repository.ReportRepository
	now        func() time.Time
}

// NewRevenueUseCase construye el caso de uso.
func NewRevenueUseCase(reportRepo repository.ReportRepository) *RevenueUseCase {
	return &RevenueUseCase{reportRepo: reportRepo, now: time.Now}
}

// Overview construye la vista de facturación del panel: el mes en curso, la
// proyección de los próximos meses (los pedidos futuros ya registrados) y la
// serie diaria del mes actual.
//
// Dos consultas en paralelo:
//  1. GetMonthlyRevenue → CurrentMonthRevenue + MonthlyProjection
//  2. GetDailyRevenue   → Daily
func (uc *RevenueUseCase) Overview(ctx context.Context) (*dto.RevenueOverviewDTO, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	type monthlyResult struct {
		rows []repository.MonthRevenueRow
		err  error
	}
	type dailyResult struct {
		rows []repository.DailyRevenueRow
		err  error
	}

	monthlyCh := make(chan monthlyResult, 1)
	dailyCh := make(chan dailyResult, 1)

	go func() {
		rows, err := uc.reportRepo.GetMonthlyRevenue(ctx, projectionMonthsAhead)
		monthlyCh <- monthlyResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetDailyRevenue(ctx, monthStart, monthEnd)
		dailyCh <- dailyResult{rows, err}
	}()

	monthly := <-monthlyCh
	daily := <-dailyCh

	if monthly.err != nil {
		return nil, fmt.Errorf("facturación: proyección mensual: %w", monthly.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("facturación: serie diaria: %w", daily.err)
	}

	out := &dto.RevenueOverviewDTO{
		MonthlyProjection: make([]dto.MonthRevenueDTO, 0, len(monthly.rows)),
		Daily:             make([]dto.DailyRevenueDTO, 0, len(daily.rows)),
	}
	for i, row := range monthly.rows {
		if i == 0 {
			out.CurrentMonthRevenue = row.Revenue.Round(2)
		}
		out.MonthlyProjection = append(out.MonthlyProjection, dto.MonthRevenueDTO{
			Month:   row.MonthStart.Format("Jan 2006"),
			Revenue: row.Revenue.Round(2),
		})
	}
	for _, row := range daily.rows {
		out.Daily = append(out.Daily, dto.DailyRevenueDTO{
			Date:    row.Date.Format("2006-01-02"),
			Revenue: row.Revenue.Round(2),
		})
	}
	return out, nil
}

// PeriodReport construye el reporte de un período: número de pedidos,
// facturación, costo de ventas, margen bruto, serie diaria y desglose por
// categoría. Sin fechas usa el mes en curso completo.
//
// Tres consultas en paralelo, como la vista del panel.
func (uc *RevenueUseCase) PeriodReport(ctx context.Context, req dto.PeriodReportRequest) (*dto.PeriodReportDTO, error) {
	start, end, err := uc.resolvePeriod(req)
	if err != nil {
		return nil, err
	}

	type metricsResult struct {
		metrics repository.SummaryMetrics
		err     error
	}
	type dailyResult struct {
		rows []repository.DailyRevenueRow
		err  error
	}
	type categoryResult struct {
		rows []repository.CategoryRevenueRow
		err  error
	}

	metricsCh := make(chan metricsResult, 1)
	dailyCh := make(chan dailyResult, 1)
	categoryCh := make(chan categoryResult, 1)

	go func() {
		m, err := uc.reportRepo.GetSummaryMetrics(ctx, start, end)
		metricsCh <- metricsResult{m, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetDailyRevenue(ctx, start, end)
		dailyCh <- dailyResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetRevenueByCategory(ctx, start, end)
		categoryCh <- categoryResult{rows, err}
	}()

	metrics := <-metricsCh
	daily := <-dailyCh
	byCategory := <-categoryCh

	if metrics.err != nil {
		return nil, fmt.Errorf("reporte de período: métricas: %w", metrics.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("reporte de período: serie diaria: %w", daily.err)
	}
	if byCategory.err != nil {
		return nil, fmt.Errorf("reporte de período: por categoría: %w", byCategory.err)
	}

	out := &dto.PeriodReportDTO{
		Period: dto.PeriodDTO{
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
		},
		TotalOrders:  metrics.metrics.TotalOrders,
		TotalRevenue: metrics.metrics.Revenue.Round(2),
		TotalCOGS:    metrics.metrics.COGS.Round(2),
		GrossProfit:  metrics.metrics.Revenue.Sub(metrics.metrics.COGS).Round(2),
		Daily:        make([]dto.DailyRevenueDTO, 0, len(daily.rows)),
		ByCategory:   make([]dto.CategoryRevenueDTO, 0, len(byCategory.rows)),
	}
	for _, row := range daily.rows {
		out.Daily = append(out.Daily, dto.DailyRevenueDTO{
			Date:    row.Date.Format("2006-01-02"),
			Revenue: row.Revenue.Round(2),
			COGS:    row.COGS.Round(2),
		})
	}
	for _, row := range byCategory.rows {
		out.ByCategory = append(out.ByCategory, dto.CategoryRevenueDTO{
			Date:     row.Date.Format("2006-01-02"),
			Category: row.Category,
			Revenue:  row.Revenue.Round(2),
		})
	}
	return out, nil
}

// resolvePeriod valida las fechas del request; las vacías se completan con el
// primer y último día del mes en curso.
func (uc *RevenueUseCase) resolvePeriod(req dto.PeriodReportRequest) (start, end time.Time, err error) {
	now := uc.now()
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)

	if req.StartDate != "" {
		start, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return start, end, fmt.Errorf("%w: fecha inicial inválida %q", domain.ErrInvalidInput, req.StartDate)
		}
	}
	if req.EndDate != "" {
		end, err = time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return start, end, fmt.Errorf("%w: fecha final inválida %q", domain.ErrInvalidInput, req.EndDate)
		}
	}
	if end.Before(start) {
		return start, end, fmt.Errorf("%w: el período termina antes de empezar", domain.ErrInvalidInput)
	}
	return start, end, nil
}
