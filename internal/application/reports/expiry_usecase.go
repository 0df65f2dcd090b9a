package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

const shortDatedDays = 30 // horizonte del listado de lotes próximos a vencer

// ExpiryUseCase genera el pronóstico de vencimientos: cuánta cerveza vence en
// cada una de las próximas semanas si no se vende antes.
type ExpiryUseCase struct {
	reportRepo   repository.ReportRepository
	defaultWeeks int
	now          func() time.Time
}

// NewExpiryUseCase construye el caso de uso. defaultWeeks es el horizonte
// cuando el cliente no indica uno.
func NewExpiryUseCase(reportRepo repository.ReportRepository, defaultWeeks int) *ExpiryUseCase {
	return &ExpiryUseCase{
		reportRepo:   reportRepo,
		defaultWeeks: defaultWeeks,
		now:          time.Now,
	}
}

// Forecast devuelve una cubeta por cada semana del horizonte, empezando hoy.
// La cantidad de cada lote es la restante estimada (producida menos vendida
// durante la vida del lote, nunca negativa); las semanas sin vencimientos
// aparecen con total cero. weeks ≤ 0 usa el horizonte por defecto.
func (uc *ExpiryUseCase) Forecast(ctx context.Context, weeks int) (*dto.ExpiryForecastDTO, error) {
	if weeks <= 0 {
		weeks = uc.defaultWeeks
	}

	today := truncateToDay(uc.now())
	end := today.AddDate(0, 0, weeks*7-1)

	lots, err := uc.reportRepo.GetExpiringLots(ctx, today, end)
	if err != nil {
		return nil, fmt.Errorf("pronóstico de vencimientos: %w", err)
	}

	// Cubetas de 7 días: la semana i cubre [hoy+7i, hoy+7i+6].
	_, baseWeek := today.ISOWeek()
	buckets := make([]dto.ExpiryWeekDTO, weeks)
	for i := range buckets {
		weekNum := baseWeek + i
		if weekNum > 52 {
			weekNum -= 52
		}
		buckets[i] = dto.ExpiryWeekDTO{
			Label:         fmt.Sprintf("Week %d", weekNum),
			TotalQuantity: decimal.Zero,
			Items:         []dto.ExpiryItemDTO{},
		}
	}

	for _, lot := range lots {
		expiry := truncateToDay(lot.ExpiryDate)
		i := int(expiry.Sub(today).Hours()) / 24 / 7
		if i < 0 || i >= weeks {
			continue
		}
		buckets[i].TotalQuantity = buckets[i].TotalQuantity.Add(lot.Remaining)
		buckets[i].Items = append(buckets[i].Items, dto.ExpiryItemDTO{
			ProductID:  lot.ProductID,
			Product:    lot.Name,
			Category:   lot.Category,
			Quantity:   formatQuantity(lot.Remaining, lot.Unit),
			ExpiryDate: expiry.Format("2006-01-02"),
		})
	}

	return &dto.ExpiryForecastDTO{Weeks: buckets}, nil
}

// ShortDated devuelve los lotes que vencen dentro de los próximos 30 días,
// ordenados por fecha de vencimiento.
func (uc *ExpiryUseCase) ShortDated(ctx context.Context) (*dto.ShortDatedReportDTO, error) {
	today := truncateToDay(uc.now())
	end := today.AddDate(0, 0, shortDatedDays)

	lots, err := uc.reportRepo.GetShortDatedLots(ctx, today, end)
	if err != nil {
		return nil, fmt.Errorf("lotes próximos a vencer: %w", err)
	}

	items := make([]dto.ShortDatedItemDTO, 0, len(lots))
	for _, lot := range lots {
		items = append(items, dto.ShortDatedItemDTO{
			ProductID:  lot.ProductID,
			Product:    lot.Name,
			Category:   lot.Category,
			Quantity:   formatQuantity(lot.Quantity, lot.Unit),
			ExpiryDate: truncateToDay(lot.ExpiryDate).Format("2006-01-02"),
		})
	}
	return &dto.ShortDatedReportDTO{Items: items}, nil
}
