package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionLot representa un lote de producción con sus propias fechas de
// producción y vencimiento. ExpiryDate se fija al crear el lote como
// production_date + vida útil del producto y no se vuelve a derivar.
type ProductionLot struct {
	ID             string
	ProductID      string
	Quantity       decimal.Decimal // > 0
	Unit           string          // ej. "L"
	ProductionDate time.Time
	ExpiryDate     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
