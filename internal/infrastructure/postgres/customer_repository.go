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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo. El nombre tiene constraint único.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, contact_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.ContactInfo, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.getBy(`id = $1`, id)
}

// GetByName obtiene un cliente por nombre exacto.
func (r *CustomerRepo) GetByName(name string) (*entity.Customer, error) {
	return r.getBy(`name = $1`, name)
}

func (r *CustomerRepo) getBy(cond string, arg any) (*entity.Customer, error) {
	query := `SELECT id, name, contact_info, created_at, updated_at FROM customers WHERE ` + cond
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.ContactInfo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes ordenados por nombre.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, contact_info, created_at, updated_at FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.ContactInfo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `UPDATE customers SET name = $2, contact_info = $3, updated_at = $4 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.ContactInfo, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente. La FK de ventas lo protege.
func (r *CustomerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountSales cuenta las ventas registradas del cliente.
func (r *CustomerRepo) CountSales(id string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sales WHERE customer_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count customer sales: %w", err)
	}
	return count, nil
}

// SearchWithTotals filtra por nombre o contacto y agrega pedidos y facturación
// históricos de cada cliente.
func (r *CustomerRepo) SearchWithTotals(term string) ([]repository.CustomerTotalsRow, error) {
	query := `
		SELECT c.id, c.name, c.contact_info, c.created_at, c.updated_at,
		       COUNT(s.id)                                  AS total_orders,
		       COALESCE(SUM(s.quantity * s.price_per_unit), 0) AS total_revenue
		FROM customers c
		LEFT JOIN sales s ON s.customer_id = c.id
		WHERE $1 = '' OR c.name ILIKE '%' || $1 || '%' OR c.contact_info ILIKE '%' || $1 || '%'
		GROUP BY c.id, c.name, c.contact_info, c.created_at, c.updated_at
		ORDER BY c.name`
	rows, err := r.q.Query(context.Background(), query, term)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	var out []repository.CustomerTotalsRow
	for rows.Next() {
		var row repository.CustomerTotalsRow
		if err := rows.Scan(
			&row.Customer.ID, &row.Customer.Name, &row.Customer.ContactInfo,
			&row.Customer.CreatedAt, &row.Customer.UpdatedAt,
			&row.TotalOrders, &row.TotalRevenue,
		); err != nil {
			return nil, fmt.Errorf("scan customer search: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
