package dto

import (
	"github.com/shopspring/decimal"
)

// ProductionDraftRequest borrador completo de una tanda de producción.
// El cliente HTTP lo arma y lo envía entero; el servidor lo inserta en una
// sola transacción.
type ProductionDraftRequest struct {
	BatchDate string                       `json:"batch_date"` // YYYY-MM-DD
	Items     []ProductionDraftItemRequest `json:"items"`
}

// ProductionDraftItemRequest línea de la tanda. La fecha de vencimiento no se
// acepta del cliente: se calcula con la vida útil del producto.
type ProductionDraftItemRequest struct {
	ProductID      string          `json:"product_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`            // default "L"
	ProductionDate string          `json:"production_date"` // YYYY-MM-DD; default la fecha de la tanda
}

// UpdateProductionRequest entrada para editar un lote existente.
// Al cambiar la fecha de producción, el vencimiento se recalcula con la vida
// útil actual del producto.
type UpdateProductionRequest struct {
	Quantity       *decimal.Decimal `json:"quantity"`
	Unit           *string          `json:"unit"`
	ProductionDate *string          `json:"production_date"` // YYYY-MM-DD
}

// ProductionRecordResponse lote con datos del producto resueltos.
type ProductionRecordResponse struct {
	ID             string          `json:"id"`
	ProductionDate string          `json:"production_date"`
	ExpiryDate     string          `json:"expiry_date"`
	ProductID      string          `json:"product_id"`
	Product        string          `json:"product"`
	Category       string          `json:"category"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// ProductionSearchRequest filtros de búsqueda de producción.
type ProductionSearchRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`   // YYYY-MM-DD
	Category  string `query:"category"`
	Product   string `query:"product"` // subcadena del nombre
}

// ProductionSearchResponse resultados con el total producido del conjunto.
type ProductionSearchResponse struct {
	Items         []ProductionRecordResponse `json:"items"`
	Total         int                        `json:"total"`
	TotalQuantity decimal.Decimal            `json:"total_quantity"`
}
