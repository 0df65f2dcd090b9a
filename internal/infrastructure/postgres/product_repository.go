package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, category, base_price, days_to_expiration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Category,
		product.BasePrice, product.DaysToExpiration, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, category, base_price, days_to_expiration, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category,
		&p.BasePrice, &p.DaysToExpiration, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, base_price = $5, days_to_expiration = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Category,
		product.BasePrice, product.DaysToExpiration, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. Las FKs de ventas y producción lo protegen.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve productos ordenados por ID, paginados.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, category, base_price, days_to_expiration, created_at, updated_at
		FROM products ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Category,
			&p.BasePrice, &p.DaysToExpiration, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// Search filtra por subcadena (id, nombre, descripción o categoría) y
// opcionalmente por categoría exacta, con conteos de uso.
func (r *ProductRepo) Search(term, category string) ([]repository.ProductSearchRow, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category, p.base_price, p.days_to_expiration,
		       p.created_at, p.updated_at,
		       COALESCE(s.cnt, 0)  AS sales_count,
		       COALESCE(pr.cnt, 0) AS production_count
		FROM products p
		LEFT JOIN (SELECT product_id, COUNT(*) AS cnt FROM sales GROUP BY product_id) s
		       ON s.product_id = p.id
		LEFT JOIN (SELECT product_id, COUNT(*) AS cnt FROM production GROUP BY product_id) pr
		       ON pr.product_id = p.id
		WHERE ($1 = '' OR p.id ILIKE '%' || $1 || '%' OR p.name ILIKE '%' || $1 || '%'
		       OR p.description ILIKE '%' || $1 || '%' OR p.category ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR p.category = $2)
		ORDER BY p.id`
	rows, err := r.q.Query(context.Background(), query, term, category)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductSearchRow
	for rows.Next() {
		var row repository.ProductSearchRow
		if err := rows.Scan(
			&row.Product.ID, &row.Product.Name, &row.Product.Description, &row.Product.Category,
			&row.Product.BasePrice, &row.Product.DaysToExpiration,
			&row.Product.CreatedAt, &row.Product.UpdatedAt,
			&row.SalesCount, &row.ProductionCount,
		); err != nil {
			return nil, fmt.Errorf("scan product search: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CountUsage cuenta ventas y lotes que referencian el producto.
func (r *ProductRepo) CountUsage(id string) (repository.ProductUsage, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM sales WHERE product_id = $1),
		       (SELECT COUNT(*) FROM production WHERE product_id = $1)`
	var usage repository.ProductUsage
	err := r.q.QueryRow(context.Background(), query, id).Scan(&usage.SalesCount, &usage.ProductionCount)
	if err != nil {
		return usage, fmt.Errorf("count product usage: %w", err)
	}
	return usage, nil
}
