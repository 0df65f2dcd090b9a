package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

func newProductionFixture(t *testing.T) (*ProductionUseCase, *memProductionRepo) {
	t.Helper()
	products := newMemProductRepo()
	require.NoError(t, products.Create(&entity.Product{
		ID:               "IPA-01",
		Name:             "IPA Dorada",
		Category:         "IPA",
		DaysToExpiration: 90,
	}))

	lots := newMemProductionRepo()
	prodDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, lots.Create(&entity.ProductionLot{
		ID:             "lote-1",
		ProductID:      "IPA-01",
		Quantity:       dec(100),
		Unit:           "L",
		ProductionDate: prodDate,
		ExpiryDate:     prodDate.AddDate(0, 0, 90),
	}))
	return NewProductionUseCase(lots, products), lots
}

func TestProductionGetByIDResuelveElProducto(t *testing.T) {
	uc, _ := newProductionFixture(t)

	out, err := uc.GetByID("lote-1")
	require.NoError(t, err)
	assert.Equal(t, "IPA Dorada", out.Product)
	assert.Equal(t, "IPA", out.Category)
	assert.Equal(t, "2026-08-01", out.ProductionDate)
	assert.Equal(t, "2026-10-30", out.ExpiryDate)

	_, err = uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductionUpdateRecalculaVencimientoAlCambiarLaFecha(t *testing.T) {
	uc, lots := newProductionFixture(t)

	out, err := uc.Update("lote-1", dto.UpdateProductionRequest{
		ProductionDate: strPtr("2026-08-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-15", out.ProductionDate)
	// El vencimiento se vuelve a derivar con la vida útil vigente.
	assert.Equal(t, "2026-11-13", out.ExpiryDate)

	stored, err := lots.GetByID("lote-1")
	require.NoError(t, err)
	assert.Equal(t, "2026-11-13", stored.ExpiryDate.Format("2006-01-02"))
}

func TestProductionUpdateSinFechaNoTocaElVencimiento(t *testing.T) {
	uc, lots := newProductionFixture(t)

	out, err := uc.Update("lote-1", dto.UpdateProductionRequest{Quantity: decPtr(dec(80))})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(dec(80)))
	assert.Equal(t, "2026-10-30", out.ExpiryDate)

	stored, err := lots.GetByID("lote-1")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-30", stored.ExpiryDate.Format("2006-01-02"))
}

func TestProductionUpdateValidaciones(t *testing.T) {
	uc, _ := newProductionFixture(t)

	_, err := uc.Update("lote-1", dto.UpdateProductionRequest{Quantity: decPtr(dec(0))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("lote-1", dto.UpdateProductionRequest{Unit: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("lote-1", dto.UpdateProductionRequest{ProductionDate: strPtr("15/08/2026")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("no-existe", dto.UpdateProductionRequest{Quantity: decPtr(dec(1))})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductionDelete(t *testing.T) {
	uc, lots := newProductionFixture(t)

	require.NoError(t, uc.Delete("lote-1"))
	_, err := lots.GetByID("lote-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete("lote-1"), domain.ErrNotFound)
}

func TestProductionSearchSumaElTotal(t *testing.T) {
	uc, lots := newProductionFixture(t)
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	lots.found = []repository.ProductionRecordRow{
		{ID: "lote-1", ProductionDate: date, ExpiryDate: date.AddDate(0, 0, 90), ProductID: "IPA-01", ProductName: "IPA Dorada", Category: "IPA", Quantity: dec(100), Unit: "L"},
		{ID: "lote-2", ProductionDate: date, ExpiryDate: date.AddDate(0, 0, 90), ProductID: "IPA-01", ProductName: "IPA Dorada", Category: "IPA", Quantity: dec(40), Unit: "L"},
	}

	out, err := uc.Search(dto.ProductionSearchRequest{StartDate: "2026-08-01", EndDate: "2026-08-31"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.True(t, out.TotalQuantity.Equal(dec(140)))

	// El filtro llega al repositorio con las fechas parseadas.
	assert.Equal(t, date, lots.filter.StartDate)

	_, err = uc.Search(dto.ProductionSearchRequest{StartDate: "2026-08-31", EndDate: "2026-08-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
