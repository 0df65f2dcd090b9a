package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// UpdateCustomerRequest entrada para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name        *string `json:"name"`
	ContactInfo *string `json:"contact_info"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// CustomerSearchItem cliente con sus totales históricos.
type CustomerSearchItem struct {
	CustomerResponse
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CustomerSearchResponse resultado de búsqueda de clientes.
type CustomerSearchResponse struct {
	Items []CustomerSearchItem `json:"items"`
	Total int                  `json:"total"`
}
