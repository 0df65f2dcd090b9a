package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación del puerto ProductionRepository sobre PostgreSQL.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador de persistencia para lotes.
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create persiste un lote nuevo con su vencimiento ya calculado.
func (r *ProductionRepo) Create(lot *entity.ProductionLot) error {
	query := `
		INSERT INTO production (id, product_id, quantity, unit, production_date, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ProductID, lot.Quantity, lot.Unit,
		lot.ProductionDate, lot.ExpiryDate, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, lot.ProductID)
		}
		return fmt.Errorf("insert production lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *ProductionRepo) GetByID(id string) (*entity.ProductionLot, error) {
	query := `
		SELECT id, product_id, quantity, unit, production_date, expiry_date, created_at, updated_at
		FROM production WHERE id = $1`
	var lot entity.ProductionLot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&lot.ID, &lot.ProductID, &lot.Quantity, &lot.Unit,
		&lot.ProductionDate, &lot.ExpiryDate, &lot.CreatedAt, &lot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get production lot: %w", err)
	}
	return &lot, nil
}

// Update actualiza un lote existente, vencimiento incluido.
func (r *ProductionRepo) Update(lot *entity.ProductionLot) error {
	query := `
		UPDATE production
		SET quantity = $2, unit = $3, production_date = $4, expiry_date = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Quantity, lot.Unit, lot.ProductionDate, lot.ExpiryDate, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production lot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un lote.
func (r *ProductionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM production WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production lot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const productionRowSelect = `
	SELECT pr.id, pr.production_date, pr.expiry_date, pr.product_id,
	       p.name, p.category, pr.quantity, pr.unit
	FROM production pr
	JOIN products p ON p.id = pr.product_id`

// Recent devuelve los últimos lotes registrados desde `since`, más recientes primero.
func (r *ProductionRepo) Recent(since time.Time, limit int) ([]repository.ProductionRecordRow, error) {
	query := productionRowSelect + `
	WHERE pr.production_date >= $1
	ORDER BY pr.production_date DESC, pr.created_at DESC
	LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("recent production: %w", err)
	}
	defer rows.Close()
	return scanProductionRows(rows)
}

// Search filtra lotes por rango de fechas, categoría y/o nombre de producto.
func (r *ProductionRepo) Search(filter repository.ProductionSearchFilter) ([]repository.ProductionRecordRow, error) {
	conds := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !filter.StartDate.IsZero() {
		conds = append(conds, "pr.production_date >= "+arg(filter.StartDate))
	}
	if !filter.EndDate.IsZero() {
		conds = append(conds, "pr.production_date <= "+arg(filter.EndDate))
	}
	if filter.Category != "" {
		conds = append(conds, "p.category = "+arg(filter.Category))
	}
	if filter.ProductName != "" {
		conds = append(conds, "p.name ILIKE '%' || "+arg(filter.ProductName)+" || '%'")
	}

	query := productionRowSelect
	if len(conds) > 0 {
		query += "\n\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\tORDER BY pr.production_date DESC, pr.created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search production: %w", err)
	}
	defer rows.Close()
	return scanProductionRows(rows)
}

func scanProductionRows(rows pgx.Rows) ([]repository.ProductionRecordRow, error) {
	var out []repository.ProductionRecordRow
	for rows.Next() {
		var row repository.ProductionRecordRow
		if err := rows.Scan(
			&row.ID, &row.ProductionDate, &row.ExpiryDate, &row.ProductID,
			&row.ProductName, &row.Category, &row.Quantity, &row.Unit,
		); err != nil {
			return nil, fmt.Errorf("scan production row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
