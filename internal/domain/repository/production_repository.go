package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
)

// ProductionRecordRow fila de producción con los datos del producto ya resueltos
// (join con products y categories), para listados y búsqueda.
type ProductionRecordRow struct {
	ID             string
	ProductionDate time.Time
	ExpiryDate     time.Time
	ProductID      string
	ProductName    string
	Category       string
	Quantity       decimal.Decimal
	Unit           string
}

// ProductionSearchFilter filtros de búsqueda de lotes de producción.
// Category y ProductName vacíos significan "sin filtro".
type ProductionSearchFilter struct {
	StartDate   time.Time
	EndDate     time.Time
	Category    string
	ProductName string // subcadena case-insensitive
}

// ProductionRepository define el puerto de persistencia para ProductionLot.
type ProductionRepository interface {
	Create(lot *entity.ProductionLot) error
	GetByID(id string) (*entity.ProductionLot, error)
	Update(lot *entity.ProductionLot) error
	Delete(id string) error
	// Recent devuelve los últimos lotes registrados desde `since`, más recientes primero.
	Recent(since time.Time, limit int) ([]ProductionRecordRow, error)
	Search(filter ProductionSearchFilter) ([]ProductionRecordRow, error)
}
