package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura de los reportes del panel.
// Trabaja directo sobre el pool; los reportes nunca abren transacciones.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// ListCatalog devuelve todos los productos con su categoría, ordenados por ID.
func (r *ReportRepo) ListCatalog(ctx context.Context) ([]repository.CatalogRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, category FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("catálogo: %w", err)
	}
	defer rows.Close()

	var out []repository.CatalogRow
	for rows.Next() {
		var row repository.CatalogRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Description, &row.Category); err != nil {
			return nil, fmt.Errorf("scan catálogo: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetProductionTotals suma la producción por producto con fecha ≤ until.
func (r *ReportRepo) GetProductionTotals(ctx context.Context, until time.Time) ([]repository.ProductionTotalRow, error) {
	const query = `
	SELECT product_id, SUM(quantity) AS total, MAX(unit) AS unit
	FROM production
	WHERE production_date <= $1
	GROUP BY product_id`
	rows, err := r.pool.Query(ctx, query, until)
	if err != nil {
		return nil, fmt.Errorf("producción acumulada: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductionTotalRow
	for rows.Next() {
		var row repository.ProductionTotalRow
		if err := rows.Scan(&row.ProductID, &row.Total, &row.Unit); err != nil {
			return nil, fmt.Errorf("scan producción acumulada: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetSalesTotals suma las ventas por producto con fecha ≤ until.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, until time.Time) ([]repository.SalesTotalRow, error) {
	const query = `
	SELECT product_id, SUM(quantity) AS total
	FROM sales
	WHERE sale_date <= $1
	GROUP BY product_id`
	rows, err := r.pool.Query(ctx, query, until)
	if err != nil {
		return nil, fmt.Errorf("ventas acumuladas: %w", err)
	}
	defer rows.Close()

	var out []repository.SalesTotalRow
	for rows.Next() {
		var row repository.SalesTotalRow
		if err := rows.Scan(&row.ProductID, &row.Total); err != nil {
			return nil, fmt.Errorf("scan ventas acumuladas: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetFutureProduction devuelve producción con fecha en (after, until],
// agrupada por producto y día.
func (r *ReportRepo) GetFutureProduction(ctx context.Context, after, until time.Time) ([]repository.FutureEventRow, error) {
	const query = `
	SELECT product_id, production_date, SUM(quantity) AS quantity
	FROM production
	WHERE production_date > $1 AND production_date <= $2
	GROUP BY product_id, production_date
	ORDER BY production_date`
	return r.queryFutureEvents(ctx, query, after, until, "producción futura")
}

// GetFutureSales devuelve ventas con fecha en (after, until], agrupadas por
// producto y día.
func (r *ReportRepo) GetFutureSales(ctx context.Context, after, until time.Time) ([]repository.FutureEventRow, error) {
	const query = `
	SELECT product_id, sale_date, SUM(quantity) AS quantity
	FROM sales
	WHERE sale_date > $1 AND sale_date <= $2
	GROUP BY product_id, sale_date
	ORDER BY sale_date`
	return r.queryFutureEvents(ctx, query, after, until, "ventas futuras")
}

func (r *ReportRepo) queryFutureEvents(ctx context.Context, query string, after, until time.Time, label string) ([]repository.FutureEventRow, error) {
	rows, err := r.pool.Query(ctx, query, after, until)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	defer rows.Close()

	var out []repository.FutureEventRow
	for rows.Next() {
		var row repository.FutureEventRow
		if err := rows.Scan(&row.ProductID, &row.Date, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan %s: %w", label, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetExpiringLots devuelve los lotes con vencimiento en [start, end] y
// cantidad restante > 0. La restante descuenta del lote todas las ventas del
// producto hechas durante la vida del lote, sin bajar de cero.
func (r *ReportRepo) GetExpiringLots(ctx context.Context, start, end time.Time) ([]repository.ExpiringLotRow, error) {
	const query = `
	WITH lot_remaining AS (
	    SELECT pr.product_id, pr.expiry_date, pr.unit,
	           GREATEST(pr.quantity - COALESCE((
	               SELECT SUM(s.quantity)
	               FROM sales s
	               WHERE s.product_id = pr.product_id
	                 AND s.sale_date BETWEEN pr.production_date AND pr.expiry_date
	           ), 0), 0) AS remaining
	    FROM production pr
	    WHERE pr.expiry_date BETWEEN $1 AND $2
	)
	SELECT lr.product_id, p.name, p.category, lr.expiry_date, lr.remaining, lr.unit
	FROM lot_remaining lr
	JOIN products p ON p.id = lr.product_id
	WHERE lr.remaining > 0
	ORDER BY lr.expiry_date, lr.product_id`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("lotes por vencer: %w", err)
	}
	defer rows.Close()

	var out []repository.ExpiringLotRow
	for rows.Next() {
		var row repository.ExpiringLotRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Category, &row.ExpiryDate, &row.Remaining, &row.Unit); err != nil {
			return nil, fmt.Errorf("scan lote por vencer: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetShortDatedLots devuelve lotes con vencimiento en [start, end] y cantidad > 0.
func (r *ReportRepo) GetShortDatedLots(ctx context.Context, start, end time.Time) ([]repository.ShortDatedRow, error) {
	const query = `
	SELECT pr.product_id, p.name, p.category, pr.quantity, pr.unit, pr.expiry_date
	FROM production pr
	JOIN products p ON p.id = pr.product_id
	WHERE pr.expiry_date BETWEEN $1 AND $2 AND pr.quantity > 0
	ORDER BY pr.expiry_date, pr.product_id`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("lotes próximos a vencer: %w", err)
	}
	defer rows.Close()

	var out []repository.ShortDatedRow
	for rows.Next() {
		var row repository.ShortDatedRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Category, &row.Quantity, &row.Unit, &row.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scan lote próximo a vencer: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetMonthlyRevenue devuelve la facturación del mes actual y los monthsAhead
// siguientes. El CTE recursivo genera los meses, así los meses sin ventas
// aparecen con cero.
func (r *ReportRepo) GetMonthlyRevenue(ctx context.Context, monthsAhead int) ([]repository.MonthRevenueRow, error) {
	const query = `
	WITH RECURSIVE months AS (
	    SELECT date_trunc('month', CURRENT_DATE)::date AS month_start, 0 AS n
	    UNION ALL
	    SELECT (month_start + INTERVAL '1 month')::date, n + 1
	    FROM months WHERE n < $1
	)
	SELECT m.month_start,
	       COALESCE(SUM(s.quantity * s.price_per_unit), 0) AS revenue
	FROM months m
	LEFT JOIN sales s ON date_trunc('month', s.sale_date)::date = m.month_start
	GROUP BY m.month_start
	ORDER BY m.month_start`
	rows, err := r.pool.Query(ctx, query, monthsAhead)
	if err != nil {
		return nil, fmt.Errorf("facturación mensual: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthRevenueRow
	for rows.Next() {
		var row repository.MonthRevenueRow
		if err := rows.Scan(&row.MonthStart, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan facturación mensual: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetDailyRevenue devuelve facturación y COGS por día en [start, end].
// COGS se valora a precio base vigente del producto.
func (r *ReportRepo) GetDailyRevenue(ctx context.Context, start, end time.Time) ([]repository.DailyRevenueRow, error) {
	const query = `
	SELECT s.sale_date,
	       SUM(s.quantity * s.price_per_unit) AS revenue,
	       SUM(s.quantity * p.base_price)     AS cogs
	FROM sales s
	JOIN products p ON p.id = s.product_id
	WHERE s.sale_date BETWEEN $1 AND $2
	GROUP BY s.sale_date
	ORDER BY s.sale_date`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("facturación diaria: %w", err)
	}
	defer rows.Close()

	var out []repository.DailyRevenueRow
	for rows.Next() {
		var row repository.DailyRevenueRow
		if err := rows.Scan(&row.Date, &row.Revenue, &row.COGS); err != nil {
			return nil, fmt.Errorf("scan facturación diaria: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetSummaryMetrics devuelve número de pedidos, facturación y COGS del período.
// Un pedido es el conjunto de líneas de un cliente en una fecha.
func (r *ReportRepo) GetSummaryMetrics(ctx context.Context, start, end time.Time) (repository.SummaryMetrics, error) {
	const query = `
	SELECT COUNT(DISTINCT (s.customer_id, s.sale_date))        AS total_orders,
	       COALESCE(SUM(s.quantity * s.price_per_unit), 0)     AS revenue,
	       COALESCE(SUM(s.quantity * p.base_price), 0)         AS cogs
	FROM sales s
	JOIN products p ON p.id = s.product_id
	WHERE s.sale_date BETWEEN $1 AND $2`
	var m repository.SummaryMetrics
	err := r.pool.QueryRow(ctx, query, start, end).Scan(&m.TotalOrders, &m.Revenue, &m.COGS)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return m, fmt.Errorf("métricas del período: %w", err)
	}
	return m, nil
}

// GetRevenueByCategory devuelve la facturación por día y categoría en [start, end].
func (r *ReportRepo) GetRevenueByCategory(ctx context.Context, start, end time.Time) ([]repository.CategoryRevenueRow, error) {
	const query = `
	SELECT s.sale_date, p.category,
	       SUM(s.quantity * s.price_per_unit) AS revenue
	FROM sales s
	JOIN products p ON p.id = s.product_id
	WHERE s.sale_date BETWEEN $1 AND $2
	GROUP BY s.sale_date, p.category
	ORDER BY s.sale_date, p.category`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("facturación por categoría: %w", err)
	}
	defer rows.Close()

	var out []repository.CategoryRevenueRow
	for rows.Next() {
		var row repository.CategoryRevenueRow
		if err := rows.Scan(&row.Date, &row.Category, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan facturación por categoría: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
