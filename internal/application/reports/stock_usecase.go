package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// StockUseCase calcula la proyección de stock del panel: alertas de stock
// negativo y la matriz semanal de niveles.
//
// Fuente de datos: ReportRepository (consultas read-only). El cálculo es puro
// a partir del snapshot; el filtro de búsqueda se aplica después de proyectar,
// así que nunca cambia los niveles de las filas que sobreviven.
type StockUseCase struct {
	reportRepo   repository.ReportRepository
	horizonWeeks int
	defaultUnit  string
	now          func() time.Time
}

// NewStockUseCase construye el caso de uso. horizonWeeks es el número de
// ventanas semanales de la matriz (y el horizonte de las alertas).
func NewStockUseCase(reportRepo repository.ReportRepository, horizonWeeks int, defaultUnit string) *StockUseCase {
	return &StockUseCase{
		reportRepo:   reportRepo,
		horizonWeeks: horizonWeeks,
		defaultUnit:  defaultUnit,
		now:          time.Now,
	}
}

// LowStock devuelve los productos cuya proyección cae por debajo de cero en
// algún punto del horizonte. Para cada uno informa el stock actual y el nivel
// mínimo proyectado, ambos con su unidad como etiqueta.
func (uc *StockUseCase) LowStock(ctx context.Context) (*dto.LowStockReportDTO, error) {
	today := truncateToDay(uc.now())
	_, until := uc.windowRange(today)

	states, err := buildSnapshot(ctx, uc.reportRepo, today, until, uc.defaultUnit)
	if err != nil {
		return nil, fmt.Errorf("stock bajo: %w", err)
	}

	items := make([]dto.LowStockItemDTO, 0)
	for i := range states {
		p := &states[i]
		min := p.minimumFutureStock()
		if !min.IsNegative() {
			continue
		}
		items = append(items, dto.LowStockItemDTO{
			ProductID:          p.ID,
			Product:            p.Name,
			Category:           p.Category,
			CurrentStock:       formatQuantity(p.CurrentStock, p.Unit),
			MinimumFutureStock: formatQuantity(min, p.Unit),
		})
	}
	return &dto.LowStockReportDTO{Items: items}, nil
}

// StockMatrix devuelve la matriz semanal: una columna por ventana de 7 días y
// una fila por producto con el nivel proyectado al cierre de cada ventana.
// search filtra filas por subcadena sin distinguir mayúsculas sobre id,
// nombre, descripción o categoría; vacío devuelve todo el catálogo.
func (uc *StockUseCase) StockMatrix(ctx context.Context, search string) (*dto.StockMatrixDTO, error) {
	today := truncateToDay(uc.now())
	start, until := uc.windowRange(today)

	states, err := buildSnapshot(ctx, uc.reportRepo, today, until, uc.defaultUnit)
	if err != nil {
		return nil, fmt.Errorf("matriz de stock: %w", err)
	}

	// Las columnas se etiquetan con la semana ISO de la primera ventana más el
	// desplazamiento. No hay wrap: "Week 53" o "Week 55" son etiquetas de
	// pantalla válidas, no semanas ISO reales.
	_, baseWeek := start.ISOWeek()
	columns := make([]string, uc.horizonWeeks)
	for i := 0; i < uc.horizonWeeks; i++ {
		columns[i] = fmt.Sprintf("Week %d", baseWeek+i)
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	rows := make([]dto.StockMatrixRowDTO, 0, len(states))
	for i := range states {
		p := &states[i]
		if !p.matches(needle) {
			continue
		}
		levels := make([]decimal.Decimal, uc.horizonWeeks)
		for w := 0; w < uc.horizonWeeks; w++ {
			windowEnd := start.AddDate(0, 0, (w+1)*7-1)
			levels[w] = p.levelAt(windowEnd)
		}
		rows = append(rows, dto.StockMatrixRowDTO{
			ProductID:    p.ID,
			Product:      p.Name,
			Category:     p.Category,
			CurrentStock: p.CurrentStock,
			Levels:       levels,
		})
	}

	return &dto.StockMatrixDTO{Columns: columns, Rows: rows}, nil
}

// windowRange devuelve el inicio de la primera ventana (el lunes de la semana
// de today) y el último día del horizonte, ambos inclusive.
func (uc *StockUseCase) windowRange(today time.Time) (start, until time.Time) {
	offset := (int(today.Weekday()) + 6) % 7 // lunes = 0
	start = today.AddDate(0, 0, -offset)
	until = start.AddDate(0, 0, uc.horizonWeeks*7-1)
	return start, until
}

// formatQuantity une cantidad y unidad para pantalla, ej. "100 L" / "-50 L".
func formatQuantity(q decimal.Decimal, unit string) string {
	return fmt.Sprintf("%s %s", q.String(), unit)
}
