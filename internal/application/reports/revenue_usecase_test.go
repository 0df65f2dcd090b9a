package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

func newRevenueUC(repo repository.ReportRepository) *RevenueUseCase {
	uc := NewRevenueUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestOverviewMesActualYProyeccion(t *testing.T) {
	repo := &fakeReportRepo{
		monthly: []repository.MonthRevenueRow{
			{MonthStart: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.RequireFromString("1234.567")},
			{MonthStart: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.Zero},
			{MonthStart: time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC), Revenue: dec(500)},
		},
		daily: []repository.DailyRevenueRow{
			{Date: time.Date(2026, 12, 3, 0, 0, 0, 0, time.UTC), Revenue: dec(200), COGS: dec(90)},
		},
	}

	out, err := newRevenueUC(repo).Overview(context.Background())
	require.NoError(t, err)

	// La primera fila mensual es el mes en curso, redondeada a dos decimales.
	assert.Equal(t, "1234.57", out.CurrentMonthRevenue.String())
	require.Len(t, out.MonthlyProjection, 3)
	assert.Equal(t, "Dec 2026", out.MonthlyProjection[0].Month)
	assert.Equal(t, "Jan 2027", out.MonthlyProjection[1].Month)
	assert.True(t, out.MonthlyProjection[1].Revenue.IsZero())

	require.Len(t, out.Daily, 1)
	assert.Equal(t, "2026-12-03", out.Daily[0].Date)
}

func TestOverviewAbortaSiUnaConsultaFalla(t *testing.T) {
	repo := &fakeReportRepo{errs: map[string]error{"daily": assert.AnError}}

	_, err := newRevenueUC(repo).Overview(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPeriodReportCalculaMargenBruto(t *testing.T) {
	repo := &fakeReportRepo{
		metrics: repository.SummaryMetrics{
			TotalOrders: 7,
			Revenue:     decimal.RequireFromString("1000.005"),
			COGS:        dec(400),
		},
		daily: []repository.DailyRevenueRow{
			{Date: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), Revenue: dec(300), COGS: dec(120)},
		},
		byCategory: []repository.CategoryRevenueRow{
			{Date: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), Category: "IPA", Revenue: dec(300)},
		},
	}

	out, err := newRevenueUC(repo).PeriodReport(context.Background(), dto.PeriodReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, 7, out.TotalOrders)
	assert.Equal(t, "1000.01", out.TotalRevenue.String())
	assert.Equal(t, "600.01", out.GrossProfit.String())

	// Sin fechas el período es el mes en curso completo.
	assert.Equal(t, "2026-12-01", out.Period.StartDate)
	assert.Equal(t, "2026-12-31", out.Period.EndDate)

	require.Len(t, out.Daily, 1)
	assert.Equal(t, "120", out.Daily[0].COGS.String())
	require.Len(t, out.ByCategory, 1)
	assert.Equal(t, "IPA", out.ByCategory[0].Category)
}

func TestPeriodReportFechasExplicitas(t *testing.T) {
	out, err := newRevenueUC(&fakeReportRepo{}).PeriodReport(context.Background(), dto.PeriodReportRequest{
		StartDate: "2026-11-01",
		EndDate:   "2026-11-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-11-01", out.Period.StartDate)
	assert.Equal(t, "2026-11-15", out.Period.EndDate)
}

func TestPeriodReportFechasInvalidas(t *testing.T) {
	uc := newRevenueUC(&fakeReportRepo{})

	_, err := uc.PeriodReport(context.Background(), dto.PeriodReportRequest{StartDate: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PeriodReport(context.Background(), dto.PeriodReportRequest{EndDate: "2026/12/01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Período invertido.
	_, err = uc.PeriodReport(context.Background(), dto.PeriodReportRequest{
		StartDate: "2026-12-10",
		EndDate:   "2026-12-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
