package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una línea de pedido vendida a un cliente.
// No hay cabecera de pedido: cada línea es un registro independiente,
// como en el esquema original; el borrador de pedido vive en la capa de aplicación.
type Sale struct {
	ID           string
	ProductID    string
	CustomerID   string
	Quantity     decimal.Decimal // > 0
	Unit         string
	PricePerUnit decimal.Decimal
	SaleDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Total devuelve el importe de la línea (cantidad × precio unitario).
func (s *Sale) Total() decimal.Decimal {
	return s.Quantity.Mul(s.PricePerUnit)
}
