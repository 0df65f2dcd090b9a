package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El ID lo asigna el usuario.
type CreateProductRequest struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	BasePrice        decimal.Decimal `json:"base_price"`
	DaysToExpiration int             `json:"days_to_expiration"` // default 90
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name             *string          `json:"name"`
	Description      *string          `json:"description"`
	Category         *string          `json:"category"`
	BasePrice        *decimal.Decimal `json:"base_price"`
	DaysToExpiration *int             `json:"days_to_expiration"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	BasePrice        decimal.Decimal `json:"base_price"`
	DaysToExpiration int             `json:"days_to_expiration"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductSearchItem producto con sus conteos de uso (ventas y lotes).
type ProductSearchItem struct {
	ProductResponse
	TotalSales      int `json:"total_sales"`
	TotalProduction int `json:"total_production"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// ProductSearchResponse resultado de búsqueda con conteos.
type ProductSearchResponse struct {
	Items []ProductSearchItem `json:"items"`
	Total int                 `json:"total"`
}
