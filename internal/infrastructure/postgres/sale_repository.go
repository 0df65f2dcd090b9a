package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una línea de venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, customer_id, quantity, unit, price_per_unit, sale_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.CustomerID, sale.Quantity, sale.Unit,
		sale.PricePerUnit, sale.SaleDate, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto %s o cliente %s", domain.ErrNotFound, sale.ProductID, sale.CustomerID)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una línea de venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, product_id, customer_id, quantity, unit, price_per_unit, sale_date, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.CustomerID, &s.Quantity, &s.Unit,
		&s.PricePerUnit, &s.SaleDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// Update actualiza cantidad, unidad y precio de una línea.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET quantity = $2, unit = $3, price_per_unit = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Quantity, sale.Unit, sale.PricePerUnit, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una línea de venta.
func (r *SaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const saleRowSelect = `
	SELECT s.id, s.sale_date, c.name, s.product_id, p.name, p.category,
	       s.quantity, s.unit, s.price_per_unit, s.quantity * s.price_per_unit AS total
	FROM sales s
	JOIN products p  ON p.id = s.product_id
	JOIN customers c ON c.id = s.customer_id`

// Recent devuelve las últimas ventas, opcionalmente de un cliente.
func (r *SaleRepo) Recent(customerID string, limit int) ([]repository.SaleRecordRow, error) {
	query := saleRowSelect + `
	WHERE $1 = '' OR s.customer_id = $1
	ORDER BY s.sale_date DESC, s.created_at DESC
	LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()
	return scanSaleRows(rows)
}

// Search filtra ventas por rango de fechas, cliente y/o categoría.
func (r *SaleRepo) Search(filter repository.SaleSearchFilter) ([]repository.SaleRecordRow, error) {
	conds := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !filter.StartDate.IsZero() {
		conds = append(conds, "s.sale_date >= "+arg(filter.StartDate))
	}
	if !filter.EndDate.IsZero() {
		conds = append(conds, "s.sale_date <= "+arg(filter.EndDate))
	}
	if filter.CustomerID != "" {
		conds = append(conds, "s.customer_id = "+arg(filter.CustomerID))
	}
	if filter.Category != "" {
		conds = append(conds, "p.category = "+arg(filter.Category))
	}

	query := saleRowSelect
	if len(conds) > 0 {
		query += "\n\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\tORDER BY s.sale_date DESC, s.created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search sales: %w", err)
	}
	defer rows.Close()
	return scanSaleRows(rows)
}

func scanSaleRows(rows pgx.Rows) ([]repository.SaleRecordRow, error) {
	var out []repository.SaleRecordRow
	for rows.Next() {
		var row repository.SaleRecordRow
		if err := rows.Scan(
			&row.ID, &row.SaleDate, &row.CustomerName, &row.ProductID, &row.ProductName,
			&row.Category, &row.Quantity, &row.Unit, &row.PricePerUnit, &row.Total,
		); err != nil {
			return nil, fmt.Errorf("scan sale row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
