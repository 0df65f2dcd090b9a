package dto

import "github.com/shopspring/decimal"

// ── Stock bajo ────────────────────────────────────────────────────────────────

// LowStockItemDTO producto cuya proyección de stock llega a negativo.
// Las cantidades llevan la unidad como etiqueta, ej. "100 L" / "-50 L".
type LowStockItemDTO struct {
	ProductID          string `json:"product_id"`
	Product            string `json:"product"`
	Category           string `json:"category"`
	CurrentStock       string `json:"current_stock"`
	MinimumFutureStock string `json:"minimum_future_stock"`
}

// LowStockReportDTO respuesta de GET /api/overview/low-stock.
type LowStockReportDTO struct {
	Items []LowStockItemDTO `json:"items"`
}

// ── Matriz semanal ────────────────────────────────────────────────────────────

// StockMatrixRowDTO fila de la matriz: un producto y su nivel proyectado al
// cierre de cada ventana semanal. Levels tiene la misma longitud que Columns.
type StockMatrixRowDTO struct {
	ProductID    string            `json:"product_id"`
	Product      string            `json:"product"`
	Category     string            `json:"category"`
	CurrentStock decimal.Decimal   `json:"current_stock"`
	Levels       []decimal.Decimal `json:"levels"`
}

// StockMatrixDTO respuesta de GET /api/overview/stock-matrix.
// Columns son etiquetas "Week N"; N puede superar 52 (no se aplica wrap,
// es una etiqueta de pantalla, no una semana ISO real).
type StockMatrixDTO struct {
	Columns []string            `json:"columns"`
	Rows    []StockMatrixRowDTO `json:"rows"`
}

// ── Vencimientos ──────────────────────────────────────────────────────────────

// ExpiryItemDTO lote con cantidad restante que vence en la semana.
type ExpiryItemDTO struct {
	ProductID  string `json:"product_id"`
	Product    string `json:"product"`
	Category   string `json:"category"`
	Quantity   string `json:"quantity"` // con unidad, ej. "12 L"
	ExpiryDate string `json:"expiry_date"`
}

// ExpiryWeekDTO cubeta semanal del pronóstico: total para graficar y detalle
// por lote para el drill-down.
type ExpiryWeekDTO struct {
	Label         string          `json:"label"` // "Week N"; aquí sí hay wrap en 52
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	Items         []ExpiryItemDTO `json:"items"`
}

// ExpiryForecastDTO respuesta de GET /api/overview/expiry.
type ExpiryForecastDTO struct {
	Weeks []ExpiryWeekDTO `json:"weeks"`
}

// ShortDatedItemDTO lote que vence dentro de los próximos 30 días.
type ShortDatedItemDTO struct {
	ProductID  string `json:"product_id"`
	Product    string `json:"product"`
	Category   string `json:"category"`
	Quantity   string `json:"quantity"`
	ExpiryDate string `json:"expiry_date"`
}

// ShortDatedReportDTO respuesta de GET /api/overview/short-dated.
type ShortDatedReportDTO struct {
	Items []ShortDatedItemDTO `json:"items"`
}

// ── Facturación ───────────────────────────────────────────────────────────────

// MonthRevenueDTO facturación de un mes del horizonte de proyección.
type MonthRevenueDTO struct {
	Month   string          `json:"month"` // ej. "Aug 2026"
	Revenue decimal.Decimal `json:"revenue"`
}

// DailyRevenueDTO facturación (y COGS cuando aplica) de un día.
type DailyRevenueDTO struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	COGS    decimal.Decimal `json:"cogs,omitempty"`
}

// RevenueOverviewDTO respuesta de GET /api/overview/revenue: mes en curso más
// la proyección de los 6 meses siguientes y la serie diaria del mes actual.
type RevenueOverviewDTO struct {
	CurrentMonthRevenue decimal.Decimal   `json:"current_month_revenue"`
	MonthlyProjection   []MonthRevenueDTO `json:"monthly_projection"`
	Daily               []DailyRevenueDTO `json:"daily"`
}

// PeriodDTO rango de fechas de un reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// CategoryRevenueDTO facturación de una categoría en un día (para barras apiladas).
type CategoryRevenueDTO struct {
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// PeriodReportDTO respuesta de GET /api/reports/summary: métricas del período,
// serie diaria y desglose por categoría.
type PeriodReportDTO struct {
	Period       PeriodDTO            `json:"period"`
	TotalOrders  int                  `json:"total_orders"`
	TotalRevenue decimal.Decimal      `json:"total_revenue"`
	TotalCOGS    decimal.Decimal      `json:"total_cogs"`
	GrossProfit  decimal.Decimal      `json:"gross_profit"`
	Daily        []DailyRevenueDTO    `json:"daily"`
	ByCategory   []CategoryRevenueDTO `json:"by_category"`
}

// PeriodReportRequest parámetros de GET /api/reports/summary.
type PeriodReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; default primer día del mes
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; default último día del mes
}
