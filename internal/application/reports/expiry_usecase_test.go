package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

func newExpiryUC(repo repository.ReportRepository) *ExpiryUseCase {
	uc := NewExpiryUseCase(repo, 15)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestForecastHorizontePorDefecto(t *testing.T) {
	out, err := newExpiryUC(&fakeReportRepo{}).Forecast(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, out.Weeks, 15)

	// Sin lotes, todas las cubetas salen con total cero y lista vacía (no nil,
	// para que el JSON lleve []).
	for _, week := range out.Weeks {
		assert.True(t, week.TotalQuantity.IsZero())
		require.NotNil(t, week.Items)
		assert.Empty(t, week.Items)
	}
}

func TestForecastAsignaLotesALaCubetaCorrecta(t *testing.T) {
	repo := &fakeReportRepo{
		expiring: []repository.ExpiringLotRow{
			{ProductID: "IPA-01", Name: "IPA Dorada", Category: "IPA", ExpiryDate: day(0), Remaining: dec(12), Unit: "L"},
			{ProductID: "IPA-01", Name: "IPA Dorada", Category: "IPA", ExpiryDate: day(6), Remaining: dec(8), Unit: "L"},
			{ProductID: "ST-01", Name: "Stout Negra", Category: "Stout", ExpiryDate: day(7), Remaining: dec(5), Unit: "L"},
		},
	}

	out, err := newExpiryUC(repo).Forecast(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, out.Weeks, 4)

	// Los días 0 y 6 caen en la primera semana; el día 7 abre la segunda.
	first := out.Weeks[0]
	assert.True(t, first.TotalQuantity.Equal(dec(20)))
	require.Len(t, first.Items, 2)
	assert.Equal(t, "12 L", first.Items[0].Quantity)
	assert.Equal(t, fixedNow.Format("2006-01-02"), first.Items[0].ExpiryDate)

	second := out.Weeks[1]
	assert.True(t, second.TotalQuantity.Equal(dec(5)))
	require.Len(t, second.Items, 1)
	assert.Equal(t, "ST-01", second.Items[0].ProductID)

	assert.True(t, out.Weeks[2].TotalQuantity.IsZero())
	assert.True(t, out.Weeks[3].TotalQuantity.IsZero())
}

func TestForecastEtiquetasDanVueltaEnLaSemana52(t *testing.T) {
	// fixedNow cae en la semana ISO 50: con cinco semanas las etiquetas deben
	// ser 50, 51, 52 y luego volver a 1 y 2.
	_, wk := fixedNow.ISOWeek()
	require.Equal(t, 50, wk)

	out, err := newExpiryUC(&fakeReportRepo{}).Forecast(context.Background(), 5)
	require.NoError(t, err)

	labels := make([]string, 0, len(out.Weeks))
	for _, week := range out.Weeks {
		labels = append(labels, week.Label)
	}
	assert.Equal(t, []string{"Week 50", "Week 51", "Week 52", "Week 1", "Week 2"}, labels)
}

func TestForecastAbortaSiLaConsultaFalla(t *testing.T) {
	repo := &fakeReportRepo{errs: map[string]error{"expiring": assert.AnError}}

	_, err := newExpiryUC(repo).Forecast(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestShortDatedListaLotes(t *testing.T) {
	repo := &fakeReportRepo{
		shortDated: []repository.ShortDatedRow{
			{ProductID: "IPA-01", Name: "IPA Dorada", Category: "IPA", Quantity: dec(30), Unit: "L", ExpiryDate: day(10)},
		},
	}

	out, err := newExpiryUC(repo).ShortDated(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "30 L", out.Items[0].Quantity)
	assert.Equal(t, day(10).Format("2006-01-02"), out.Items[0].ExpiryDate)
}

func TestShortDatedSinLotesDevuelveListaVacia(t *testing.T) {
	out, err := newExpiryUC(&fakeReportRepo{}).ShortDated(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}
