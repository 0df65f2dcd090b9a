package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
)

// SaleRecordRow línea de venta con producto, categoría y cliente resueltos.
type SaleRecordRow struct {
	ID           string
	SaleDate     time.Time
	CustomerName string
	ProductID    string
	ProductName  string
	Category     string
	Quantity     decimal.Decimal
	Unit         string
	PricePerUnit decimal.Decimal
	Total        decimal.Decimal
}

// SaleSearchFilter filtros de búsqueda de ventas. CustomerID y Category vacíos
// significan "sin filtro".
type SaleSearchFilter struct {
	StartDate  time.Time
	EndDate    time.Time
	CustomerID string
	Category   string
}

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
	// Recent devuelve las últimas ventas, opcionalmente filtradas por cliente.
	Recent(customerID string, limit int) ([]SaleRecordRow, error)
	Search(filter SaleSearchFilter) ([]SaleRecordRow, error)
}
