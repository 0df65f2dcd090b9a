// Package reports contiene los casos de uso de solo lectura del panel:
// proyección de stock, pronóstico de vencimientos y facturación.
package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// dayDelta variación neta de stock de un producto en un día futuro
// (producción suma, ventas restan). Un día aparece a lo sumo una vez.
type dayDelta struct {
	Date  time.Time
	Delta decimal.Decimal
}

// productState estado proyectable de un producto: stock actual a hoy y los
// movimientos futuros fusionados en orden cronológico.
type productState struct {
	ID           string
	Name         string
	Description  string
	Category     string
	Unit         string
	CurrentStock decimal.Decimal
	Deltas       []dayDelta
}

// matches informa si el producto coincide con la búsqueda: subcadena
// case-insensitive sobre id, nombre, descripción o categoría. needle debe
// venir ya en minúsculas; vacío coincide con todo.
func (p *productState) matches(needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{p.ID, p.Name, p.Description, p.Category} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// buildSnapshot arma el estado de todos los productos del catálogo:
// stock actual = Σ producción − Σ ventas con fecha ≤ today, y los eventos en
// (today, until] fusionados por día. Cinco consultas en paralelo; cualquier
// error aborta el snapshot completo.
func buildSnapshot(
	ctx context.Context,
	repo repository.ReportRepository,
	today, until time.Time,
	defaultUnit string,
) ([]productState, error) {
	type catalogResult struct {
		rows []repository.CatalogRow
		err  error
	}
	type prodTotalsResult struct {
		rows []repository.ProductionTotalRow
		err  error
	}
	type salesTotalsResult struct {
		rows []repository.SalesTotalRow
		err  error
	}
	type eventsResult struct {
		rows []repository.FutureEventRow
		err  error
	}

	catalogCh := make(chan catalogResult, 1)
	prodCh := make(chan prodTotalsResult, 1)
	salesCh := make(chan salesTotalsResult, 1)
	futProdCh := make(chan eventsResult, 1)
	futSalesCh := make(chan eventsResult, 1)

	go func() {
		rows, err := repo.ListCatalog(ctx)
		catalogCh <- catalogResult{rows, err}
	}()
	go func() {
		rows, err := repo.GetProductionTotals(ctx, today)
		prodCh <- prodTotalsResult{rows, err}
	}()
	go func() {
		rows, err := repo.GetSalesTotals(ctx, today)
		salesCh <- salesTotalsResult{rows, err}
	}()
	go func() {
		rows, err := repo.GetFutureProduction(ctx, today, until)
		futProdCh <- eventsResult{rows, err}
	}()
	go func() {
		rows, err := repo.GetFutureSales(ctx, today, until)
		futSalesCh <- eventsResult{rows, err}
	}()

	catalog := <-catalogCh
	prodTotals := <-prodCh
	salesTotals := <-salesCh
	futProd := <-futProdCh
	futSales := <-futSalesCh

	if catalog.err != nil {
		return nil, fmt.Errorf("snapshot: catálogo: %w", catalog.err)
	}
	if prodTotals.err != nil {
		return nil, fmt.Errorf("snapshot: producción acumulada: %w", prodTotals.err)
	}
	if salesTotals.err != nil {
		return nil, fmt.Errorf("snapshot: ventas acumuladas: %w", salesTotals.err)
	}
	if futProd.err != nil {
		return nil, fmt.Errorf("snapshot: producción futura: %w", futProd.err)
	}
	if futSales.err != nil {
		return nil, fmt.Errorf("snapshot: ventas futuras: %w", futSales.err)
	}

	// ── Estado base: todo el catálogo, stock cero por defecto ─────────────────
	states := make([]productState, 0, len(catalog.rows))
	index := make(map[string]int, len(catalog.rows))
	for _, row := range catalog.rows {
		index[row.ProductID] = len(states)
		states = append(states, productState{
			ID:           row.ProductID,
			Name:         row.Name,
			Description:  row.Description,
			Category:     row.Category,
			Unit:         defaultUnit,
			CurrentStock: decimal.Zero,
		})
	}

	for _, row := range prodTotals.rows {
		i, ok := index[row.ProductID]
		if !ok {
			continue
		}
		states[i].CurrentStock = states[i].CurrentStock.Add(row.Total)
		if row.Unit != "" {
			states[i].Unit = row.Unit
		}
	}
	for _, row := range salesTotals.rows {
		i, ok := index[row.ProductID]
		if !ok {
			continue
		}
		states[i].CurrentStock = states[i].CurrentStock.Sub(row.Total)
	}

	// ── Eventos futuros: fusionar producción y ventas por producto y día ──────
	type dayKey struct {
		product string
		day     string // YYYY-MM-DD
	}
	merged := make(map[dayKey]decimal.Decimal)
	dates := make(map[dayKey]time.Time)

	accumulate := func(rows []repository.FutureEventRow, sign decimal.Decimal) {
		for _, row := range rows {
			key := dayKey{product: row.ProductID, day: row.Date.Format("2006-01-02")}
			merged[key] = merged[key].Add(row.Quantity.Mul(sign))
			dates[key] = row.Date
		}
	}
	accumulate(futProd.rows, decimal.NewFromInt(1))
	accumulate(futSales.rows, decimal.NewFromInt(-1))

	for key, delta := range merged {
		i, ok := index[key.product]
		if !ok {
			continue
		}
		states[i].Deltas = append(states[i].Deltas, dayDelta{Date: dates[key], Delta: delta})
	}
	for i := range states {
		sort.Slice(states[i].Deltas, func(a, b int) bool {
			return states[i].Deltas[a].Date.Before(states[i].Deltas[b].Date)
		})
	}

	return states, nil
}

// minimumFutureStock recorre los movimientos en orden cronológico acumulando
// desde el stock actual y devuelve el nivel mínimo alcanzado. Sin movimientos
// futuros el mínimo es el stock actual.
func (p *productState) minimumFutureStock() decimal.Decimal {
	level := p.CurrentStock
	min := p.CurrentStock
	for _, d := range p.Deltas {
		level = level.Add(d.Delta)
		if level.LessThan(min) {
			min = level
		}
	}
	return min
}

// levelAt devuelve el stock proyectado al cierre del día indicado: stock
// actual más todos los movimientos con fecha ≤ end.
func (p *productState) levelAt(end time.Time) decimal.Decimal {
	level := p.CurrentStock
	for _, d := range p.Deltas {
		if d.Date.After(end) {
			break
		}
		level = level.Add(d.Delta)
	}
	return level
}

// truncateToDay normaliza un instante al inicio del día en UTC. Todas las
// fechas de eventos vienen de columnas DATE, así que comparar días en UTC
// es seguro.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
