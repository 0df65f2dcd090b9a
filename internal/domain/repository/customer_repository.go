package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
)

// CustomerTotalsRow resultado crudo de la búsqueda de clientes con totales históricos.
type CustomerTotalsRow struct {
	Customer     entity.Customer
	TotalOrders  int
	TotalRevenue decimal.Decimal
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByName(name string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	CountSales(id string) (int, error)
	// SearchWithTotals filtra por nombre o contacto (case-insensitive) y devuelve
	// cada cliente con su número de pedidos y facturación acumulada.
	SearchWithTotals(term string) ([]CustomerTotalsRow, error)
}
