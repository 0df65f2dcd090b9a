package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ── Filas crudas de los reportes ──────────────────────────────────────────────
// Las produce la DB; los casos de uso de reports las convierten en DTOs.

// CatalogRow producto con su categoría resuelta, para el agregador de inventario.
type CatalogRow struct {
	ProductID   string
	Name        string
	Description string
	Category    string
}

// ProductionTotalRow producción acumulada por producto hasta una fecha.
// Unit es la unidad de los registros de producción del producto.
type ProductionTotalRow struct {
	ProductID string
	Total     decimal.Decimal
	Unit      string
}

// SalesTotalRow ventas acumuladas por producto hasta una fecha.
type SalesTotalRow struct {
	ProductID string
	Total     decimal.Decimal
}

// FutureEventRow evento futuro (producción o venta) agrupado por producto y fecha.
// Las cantidades del mismo día ya vienen sumadas en una sola fila.
type FutureEventRow struct {
	ProductID string
	Date      time.Time
	Quantity  decimal.Decimal
}

// ExpiringLotRow lote que vence dentro del horizonte, con la cantidad restante
// estimada: GREATEST(cantidad_lote − ventas del producto en [producción, vencimiento], 0).
type ExpiringLotRow struct {
	ProductID  string
	Name       string
	Category   string
	ExpiryDate time.Time
	Remaining  decimal.Decimal
	Unit       string
}

// ShortDatedRow lote próximo a vencer (listado simple, sin descuento de ventas).
type ShortDatedRow struct {
	ProductID  string
	Name       string
	Category   string
	Quantity   decimal.Decimal
	Unit       string
	ExpiryDate time.Time
}

// MonthRevenueRow facturación de un mes (meses sin ventas vienen con cero).
type MonthRevenueRow struct {
	MonthStart time.Time
	Revenue    decimal.Decimal
}

// DailyRevenueRow facturación y costo de ventas de un día.
type DailyRevenueRow struct {
	Date    time.Time
	Revenue decimal.Decimal
	COGS    decimal.Decimal
}

// CategoryRevenueRow facturación de una categoría en un día.
type CategoryRevenueRow struct {
	Date     time.Time
	Category string
	Revenue  decimal.Decimal
}

// SummaryMetrics métricas agregadas de un período.
type SummaryMetrics struct {
	TotalOrders int
	Revenue     decimal.Decimal
	COGS        decimal.Decimal
}

// ReportRepository define las consultas de solo lectura de los reportes.
// Las implementaciones no modifican datos. Cualquier error debe abortar el
// reporte completo: nunca se devuelven resultados parciales mezclados con ceros.
type ReportRepository interface {
	// ListCatalog devuelve todos los productos con su categoría, ordenados por ID.
	ListCatalog(ctx context.Context) ([]CatalogRow, error)

	// GetProductionTotals suma la producción por producto con fecha ≤ until.
	// Productos sin producción no aparecen en el resultado.
	GetProductionTotals(ctx context.Context, until time.Time) ([]ProductionTotalRow, error)

	// GetSalesTotals suma las ventas por producto con fecha ≤ until.
	GetSalesTotals(ctx context.Context, until time.Time) ([]SalesTotalRow, error)

	// GetFutureProduction devuelve producción con fecha en (after, until],
	// agrupada por producto y fecha, en orden cronológico.
	GetFutureProduction(ctx context.Context, after, until time.Time) ([]FutureEventRow, error)

	// GetFutureSales devuelve ventas con fecha en (after, until], agrupadas
	// por producto y fecha, en orden cronológico.
	GetFutureSales(ctx context.Context, after, until time.Time) ([]FutureEventRow, error)

	// GetExpiringLots devuelve los lotes con vencimiento en [start, end] y
	// cantidad restante > 0 (aproximación FIFO por lote), ordenados por vencimiento.
	GetExpiringLots(ctx context.Context, start, end time.Time) ([]ExpiringLotRow, error)

	// GetShortDatedLots devuelve lotes con vencimiento en [start, end] y cantidad > 0.
	GetShortDatedLots(ctx context.Context, start, end time.Time) ([]ShortDatedRow, error)

	// GetMonthlyRevenue devuelve la facturación del mes actual y los `monthsAhead`
	// meses siguientes; meses sin ventas aparecen con cero.
	GetMonthlyRevenue(ctx context.Context, monthsAhead int) ([]MonthRevenueRow, error)

	// GetDailyRevenue devuelve facturación y COGS por día en [start, end].
	GetDailyRevenue(ctx context.Context, start, end time.Time) ([]DailyRevenueRow, error)

	// GetSummaryMetrics devuelve número de pedidos, facturación y COGS del período.
	// Usa COALESCE para devolver cero si no hay ventas.
	GetSummaryMetrics(ctx context.Context, start, end time.Time) (SummaryMetrics, error)

	// GetRevenueByCategory devuelve la facturación por día y categoría en [start, end].
	GetRevenueByCategory(ctx context.Context, start, end time.Time) ([]CategoryRevenueRow, error)
}
