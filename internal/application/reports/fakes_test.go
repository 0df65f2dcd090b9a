package reports

import (
	"context"
	"time"

	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de reportes
// ──────────────────────────────────────────────────────────────────────────────

// fakeReportRepo devuelve filas fijas; errs permite inyectar fallos por consulta.
type fakeReportRepo struct {
	catalog     []repository.CatalogRow
	prodTotals  []repository.ProductionTotalRow
	salesTotals []repository.SalesTotalRow
	futureProd  []repository.FutureEventRow
	futureSales []repository.FutureEventRow
	expiring    []repository.ExpiringLotRow
	shortDated  []repository.ShortDatedRow
	monthly     []repository.MonthRevenueRow
	daily       []repository.DailyRevenueRow
	metrics     repository.SummaryMetrics
	byCategory  []repository.CategoryRevenueRow

	errs map[string]error
}

func (f *fakeReportRepo) fail(key string) error {
	if f.errs == nil {
		return nil
	}
	return f.errs[key]
}

func (f *fakeReportRepo) ListCatalog(context.Context) ([]repository.CatalogRow, error) {
	return f.catalog, f.fail("catalog")
}

func (f *fakeReportRepo) GetProductionTotals(_ context.Context, _ time.Time) ([]repository.ProductionTotalRow, error) {
	return f.prodTotals, f.fail("prodTotals")
}

func (f *fakeReportRepo) GetSalesTotals(_ context.Context, _ time.Time) ([]repository.SalesTotalRow, error) {
	return f.salesTotals, f.fail("salesTotals")
}

func (f *fakeReportRepo) GetFutureProduction(_ context.Context, _, _ time.Time) ([]repository.FutureEventRow, error) {
	return f.futureProd, f.fail("futureProd")
}

func (f *fakeReportRepo) GetFutureSales(_ context.Context, _, _ time.Time) ([]repository.FutureEventRow, error) {
	return f.futureSales, f.fail("futureSales")
}

func (f *fakeReportRepo) GetExpiringLots(_ context.Context, _, _ time.Time) ([]repository.ExpiringLotRow, error) {
	return f.expiring, f.fail("expiring")
}

func (f *fakeReportRepo) GetShortDatedLots(_ context.Context, _, _ time.Time) ([]repository.ShortDatedRow, error) {
	return f.shortDated, f.fail("shortDated")
}

func (f *fakeReportRepo) GetMonthlyRevenue(_ context.Context, _ int) ([]repository.MonthRevenueRow, error) {
	return f.monthly, f.fail("monthly")
}

func (f *fakeReportRepo) GetDailyRevenue(_ context.Context, _, _ time.Time) ([]repository.DailyRevenueRow, error) {
	return f.daily, f.fail("daily")
}

func (f *fakeReportRepo) GetSummaryMetrics(_ context.Context, _, _ time.Time) (repository.SummaryMetrics, error) {
	return f.metrics, f.fail("metrics")
}

func (f *fakeReportRepo) GetRevenueByCategory(_ context.Context, _, _ time.Time) ([]repository.CategoryRevenueRow, error) {
	return f.byCategory, f.fail("byCategory")
}
