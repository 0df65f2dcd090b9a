package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la cervecería.
// El ID lo asigna el usuario (código comercial), no es un UUID generado.
// DaysToExpiration es la vida útil en días: se usa para calcular la fecha de
// vencimiento de cada lote en el momento de registrarlo (no se recalcula después).
type Product struct {
	ID               string
	Name             string
	Description      string
	Category         string // nombre de la categoría; debe existir en categories
	BasePrice        decimal.Decimal
	DaysToExpiration int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ExpiryFor calcula la fecha de vencimiento de un lote producido en la fecha dada.
func (p *Product) ExpiryFor(productionDate time.Time) time.Time {
	return productionDate.AddDate(0, 0, p.DaysToExpiration)
}
