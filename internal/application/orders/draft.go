// Package orders implementa los borradores de pedido y de tanda de producción.
// Un borrador es un objeto de valor del llamador: se arma línea a línea en
// memoria y recién al confirmarlo se inserta todo en una sola transacción.
package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
)

// maxBackdateDays días hacia atrás permitidos para la fecha de producción de
// una línea respecto de la fecha de la tanda.
const maxBackdateDays = 7

// ── Tanda de producción ───────────────────────────────────────────────────────

// ProductionDraftItem línea de una tanda de producción. ExpiryDate queda
// fijada al agregar la línea con la vida útil vigente del producto.
type ProductionDraftItem struct {
	LineID         string
	ProductID      string
	ProductName    string
	Quantity       decimal.Decimal
	Unit           string
	ProductionDate time.Time
	ExpiryDate     time.Time
}

// ProductionDraft tanda de producción en construcción.
type ProductionDraft struct {
	batchDate time.Time
	items     []ProductionDraftItem
}

// NewProductionDraft crea una tanda vacía con la fecha indicada.
func NewProductionDraft(batchDate time.Time) *ProductionDraft {
	return &ProductionDraft{batchDate: batchDate}
}

// BatchDate fecha de la tanda.
func (d *ProductionDraft) BatchDate() time.Time { return d.batchDate }

// AddItem agrega una línea. La cantidad debe ser positiva; productionDate en
// cero usa la fecha de la tanda y no puede retroceder más de 7 días respecto
// de ella. El vencimiento se calcula acá y no se vuelve a derivar.
func (d *ProductionDraft) AddItem(
	product *entity.Product,
	quantity decimal.Decimal,
	unit string,
	productionDate time.Time,
) (ProductionDraftItem, error) {
	if product == nil {
		return ProductionDraftItem{}, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if !quantity.IsPositive() {
		return ProductionDraftItem{}, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if unit == "" {
		return ProductionDraftItem{}, fmt.Errorf("%w: unidad requerida", domain.ErrInvalidInput)
	}
	if productionDate.IsZero() {
		productionDate = d.batchDate
	}
	if productionDate.Before(d.batchDate.AddDate(0, 0, -maxBackdateDays)) {
		return ProductionDraftItem{}, fmt.Errorf(
			"%w: la fecha de producción no puede retroceder más de %d días",
			domain.ErrInvalidInput, maxBackdateDays)
	}

	item := ProductionDraftItem{
		LineID:         uuid.New().String(),
		ProductID:      product.ID,
		ProductName:    product.Name,
		Quantity:       quantity,
		Unit:           unit,
		ProductionDate: productionDate,
		ExpiryDate:     product.ExpiryFor(productionDate),
	}
	d.items = append(d.items, item)
	return item, nil
}

// UpdateItem cambia la cantidad de una línea existente.
func (d *ProductionDraft) UpdateItem(lineID string, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	for i := range d.items {
		if d.items[i].LineID == lineID {
			d.items[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

// RemoveItem elimina una línea del borrador.
func (d *ProductionDraft) RemoveItem(lineID string) error {
	for i := range d.items {
		if d.items[i].LineID == lineID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Clear descarta todas las líneas.
func (d *ProductionDraft) Clear() { d.items = nil }

// Items devuelve una copia de las líneas en orden de alta.
func (d *ProductionDraft) Items() []ProductionDraftItem {
	out := make([]ProductionDraftItem, len(d.items))
	copy(out, d.items)
	return out
}

// TotalQuantity suma las cantidades de todas las líneas.
func (d *ProductionDraft) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.items {
		total = total.Add(it.Quantity)
	}
	return total
}

// ── Pedido de venta ───────────────────────────────────────────────────────────

// SaleDraftItem línea de un borrador de pedido.
type SaleDraftItem struct {
	LineID       string
	ProductID    string
	ProductName  string
	Quantity     decimal.Decimal
	Unit         string
	PricePerUnit decimal.Decimal
}

// Total importe de la línea.
func (it *SaleDraftItem) Total() decimal.Decimal {
	return it.Quantity.Mul(it.PricePerUnit)
}

// SaleDraft pedido multi-producto en construcción: cliente y fecha fijos para
// todas las líneas.
type SaleDraft struct {
	customerID string
	saleDate   time.Time
	items      []SaleDraftItem
}

// NewSaleDraft crea un pedido vacío para el cliente y la fecha indicados.
func NewSaleDraft(customerID string, saleDate time.Time) (*SaleDraft, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: cliente requerido", domain.ErrInvalidInput)
	}
	return &SaleDraft{customerID: customerID, saleDate: saleDate}, nil
}

// CustomerID cliente del pedido.
func (d *SaleDraft) CustomerID() string { return d.customerID }

// SaleDate fecha del pedido.
func (d *SaleDraft) SaleDate() time.Time { return d.saleDate }

// AddItem agrega una línea. Precio en cero usa el precio base del producto.
func (d *SaleDraft) AddItem(
	product *entity.Product,
	quantity decimal.Decimal,
	unit string,
	pricePerUnit decimal.Decimal,
) (SaleDraftItem, error) {
	if product == nil {
		return SaleDraftItem{}, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if !quantity.IsPositive() {
		return SaleDraftItem{}, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if unit == "" {
		return SaleDraftItem{}, fmt.Errorf("%w: unidad requerida", domain.ErrInvalidInput)
	}
	if pricePerUnit.IsNegative() {
		return SaleDraftItem{}, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if pricePerUnit.IsZero() {
		pricePerUnit = product.BasePrice
	}

	item := SaleDraftItem{
		LineID:       uuid.New().String(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		Quantity:     quantity,
		Unit:         unit,
		PricePerUnit: pricePerUnit,
	}
	d.items = append(d.items, item)
	return item, nil
}

// UpdateItem cambia cantidad y/o precio de una línea. Valores en cero dejan
// el campo como está.
func (d *SaleDraft) UpdateItem(lineID string, quantity, pricePerUnit decimal.Decimal) error {
	for i := range d.items {
		if d.items[i].LineID != lineID {
			continue
		}
		if !quantity.IsZero() {
			if !quantity.IsPositive() {
				return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
			}
			d.items[i].Quantity = quantity
		}
		if !pricePerUnit.IsZero() {
			if pricePerUnit.IsNegative() {
				return fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
			}
			d.items[i].PricePerUnit = pricePerUnit
		}
		return nil
	}
	return domain.ErrNotFound
}

// RemoveItem elimina una línea del borrador.
func (d *SaleDraft) RemoveItem(lineID string) error {
	for i := range d.items {
		if d.items[i].LineID == lineID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Clear descarta todas las líneas.
func (d *SaleDraft) Clear() { d.items = nil }

// Items devuelve una copia de las líneas en orden de alta.
func (d *SaleDraft) Items() []SaleDraftItem {
	out := make([]SaleDraftItem, len(d.items))
	copy(out, d.items)
	return out
}

// Total importe total del pedido.
func (d *SaleDraft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.items {
		total = total.Add(it.Total())
	}
	return total
}
