package dto

import "github.com/shopspring/decimal"

// SaleDraftRequest borrador completo de un pedido multi-producto.
// Cliente y fecha quedan fijados para todas las líneas; el servidor inserta
// todo el pedido en una sola transacción.
type SaleDraftRequest struct {
	CustomerID string                 `json:"customer_id"`
	SaleDate   string                 `json:"sale_date"` // YYYY-MM-DD
	Items      []SaleDraftItemRequest `json:"items"`
}

// SaleDraftItemRequest línea del borrador de pedido.
type SaleDraftItemRequest struct {
	ProductID    string          `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"` // default "L"
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// UpdateSaleRequest entrada para editar una línea de venta existente.
type UpdateSaleRequest struct {
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         *string          `json:"unit"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
}

// SaleRecordResponse línea de venta con producto, categoría y cliente resueltos.
type SaleRecordResponse struct {
	ID           string          `json:"id"`
	SaleDate     string          `json:"sale_date"`
	Customer     string          `json:"customer"`
	ProductID    string          `json:"product_id"`
	Product      string          `json:"product"`
	Category     string          `json:"category"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Total        decimal.Decimal `json:"total"`
}

// SaleSearchRequest filtros de búsqueda de ventas.
type SaleSearchRequest struct {
	StartDate  string `query:"start_date"` // YYYY-MM-DD
	EndDate    string `query:"end_date"`   // YYYY-MM-DD
	CustomerID string `query:"customer_id"`
	Category   string `query:"category"`
}

// SaleSearchResponse resultados con la facturación total del conjunto.
type SaleSearchResponse struct {
	Items        []SaleRecordResponse `json:"items"`
	Total        int                  `json:"total"`
	TotalRevenue decimal.Decimal      `json:"total_revenue"`
}
