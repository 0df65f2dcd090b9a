package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cerveceria-api/internal/application/reports"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs mínimos para montar el router completo
// ──────────────────────────────────────────────────────────────────────────────

type stubReportRepo struct{}

func (stubReportRepo) ListCatalog(context.Context) ([]repository.CatalogRow, error) {
	return []repository.CatalogRow{{ProductID: "IPA-01", Name: "IPA Dorada", Category: "IPA"}}, nil
}

func (stubReportRepo) GetProductionTotals(context.Context, time.Time) ([]repository.ProductionTotalRow, error) {
	return []repository.ProductionTotalRow{{ProductID: "IPA-01", Total: decimal.NewFromInt(100), Unit: "L"}}, nil
}

func (stubReportRepo) GetSalesTotals(context.Context, time.Time) ([]repository.SalesTotalRow, error) {
	return nil, nil
}

func (stubReportRepo) GetFutureProduction(_ context.Context, _, _ time.Time) ([]repository.FutureEventRow, error) {
	return nil, nil
}

func (stubReportRepo) GetFutureSales(_ context.Context, _, _ time.Time) ([]repository.FutureEventRow, error) {
	return []repository.FutureEventRow{{
		ProductID: "IPA-01",
		Date:      time.Now().UTC().AddDate(0, 0, 3),
		Quantity:  decimal.NewFromInt(150),
	}}, nil
}

func (stubReportRepo) GetExpiringLots(_ context.Context, _, _ time.Time) ([]repository.ExpiringLotRow, error) {
	return nil, nil
}

func (stubReportRepo) GetShortDatedLots(_ context.Context, _, _ time.Time) ([]repository.ShortDatedRow, error) {
	return nil, nil
}

func (stubReportRepo) GetMonthlyRevenue(context.Context, int) ([]repository.MonthRevenueRow, error) {
	return nil, nil
}

func (stubReportRepo) GetDailyRevenue(_ context.Context, _, _ time.Time) ([]repository.DailyRevenueRow, error) {
	return nil, nil
}

func (stubReportRepo) GetSummaryMetrics(_ context.Context, _, _ time.Time) (repository.SummaryMetrics, error) {
	return repository.SummaryMetrics{}, nil
}

func (stubReportRepo) GetRevenueByCategory(_ context.Context, _, _ time.Time) ([]repository.CategoryRevenueRow, error) {
	return nil, nil
}

type stubProductRepo struct{}

func (stubProductRepo) Create(*entity.Product) error { return nil }
func (stubProductRepo) GetByID(id string) (*entity.Product, error) {
	if id == "IPA-01" {
		return &entity.Product{ID: "IPA-01", Name: "IPA Dorada", Category: "IPA"}, nil
	}
	return nil, domain.ErrNotFound
}
func (stubProductRepo) Update(*entity.Product) error                 { return nil }
func (stubProductRepo) Delete(string) error                          { return nil }
func (stubProductRepo) List(int, int) ([]*entity.Product, error)     { return nil, nil }
func (stubProductRepo) Search(string, string) ([]repository.ProductSearchRow, error) {
	return nil, nil
}
func (stubProductRepo) CountUsage(string) (repository.ProductUsage, error) {
	return repository.ProductUsage{}, nil
}

type stubCategoryRepo struct{}

func (stubCategoryRepo) GetByName(name string) (*entity.Category, error) {
	if name == "IPA" {
		return &entity.Category{ID: "IPA", Name: "IPA"}, nil
	}
	return nil, domain.ErrNotFound
}
func (stubCategoryRepo) List() ([]*entity.Category, error) { return nil, nil }

func newTestApp() *fiber.App {
	app := fiber.New()
	Router(app, RouterDeps{
		ProductUC: usecase.NewProductUseCase(stubProductRepo{}, stubCategoryRepo{}),
		StockUC:   reports.NewStockUseCase(stubReportRepo{}, 26, "L"),
		ExpiryUC:  reports.NewExpiryUseCase(stubReportRepo{}, 15),
		RevenueUC: reports.NewRevenueUseCase(stubReportRepo{}),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockEndpoint(t *testing.T) {
	app := newTestApp()

	status, body := doJSON(t, app, http.MethodGet, "/api/overview/low-stock", "")
	require.Equal(t, http.StatusOK, status)

	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "IPA-01", item["product_id"])
	assert.Equal(t, "100 L", item["current_stock"])
	assert.Equal(t, "-50 L", item["minimum_future_stock"])
}

func TestStockMatrixEndpoint(t *testing.T) {
	app := newTestApp()

	status, body := doJSON(t, app, http.MethodGet, "/api/overview/stock-matrix?search=ipa", "")
	require.Equal(t, http.StatusOK, status)

	columns, ok := body["columns"].([]any)
	require.True(t, ok)
	assert.Len(t, columns, 26)
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
}

func TestExpiryEndpointUsaElHorizontePorDefecto(t *testing.T) {
	app := newTestApp()

	status, body := doJSON(t, app, http.MethodGet, "/api/overview/expiry", "")
	require.Equal(t, http.StatusOK, status)
	weeks := body["weeks"].([]any)
	assert.Len(t, weeks, 15)

	status, body = doJSON(t, app, http.MethodGet, "/api/overview/expiry?weeks=4", "")
	require.Equal(t, http.StatusOK, status)
	weeks = body["weeks"].([]any)
	assert.Len(t, weeks, 4)
}

func TestProductNotFoundDevuelve404(t *testing.T) {
	app := newTestApp()

	status, body := doJSON(t, app, http.MethodGet, "/api/products/NO-EXISTE", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestProductCreateCategoriaInexistenteDevuelve400(t *testing.T) {
	app := newTestApp()

	status, body := doJSON(t, app, http.MethodPost, "/api/products/",
		`{"id":"X-01","name":"Porter Ahumada","category":"Porter"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CATEGORY_NOT_FOUND", body["code"])
}

func TestProductCreateCuerpoInvalidoDevuelve400(t *testing.T) {
	app := newTestApp()

	status, body := doJSON(t, app, http.MethodPost, "/api/products/", `{"id":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestReportSummaryFechasInvalidasDevuelve400(t *testing.T) {
	app := newTestApp()

	status, body := doJSON(t, app, http.MethodGet, "/api/reports/summary?start_date=ayer", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}
