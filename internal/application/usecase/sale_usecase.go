package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// SaleUseCase consulta y edición de líneas de venta ya registradas.
// El alta va por el borrador de pedido (paquete orders).
type SaleUseCase struct {
	repo         repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	repo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *SaleUseCase {
	return &SaleUseCase{repo: repo, productRepo: productRepo, customerRepo: customerRepo}
}

// GetByID obtiene una línea de venta con producto y cliente resueltos.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleRecordResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(sale.ProductID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(sale.CustomerID)
	if err != nil {
		return nil, err
	}
	return &dto.SaleRecordResponse{
		ID:           sale.ID,
		SaleDate:     sale.SaleDate.Format("2006-01-02"),
		Customer:     customer.Name,
		ProductID:    sale.ProductID,
		Product:      product.Name,
		Category:     product.Category,
		Quantity:     sale.Quantity,
		Unit:         sale.Unit,
		PricePerUnit: sale.PricePerUnit,
		Total:        sale.Total(),
	}, nil
}

// Update edita cantidad, unidad y/o precio de una línea.
func (uc *SaleUseCase) Update(id string, in dto.UpdateSaleRequest) (*dto.SaleRecordResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Quantity != nil {
		if !in.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
		}
		sale.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		if *in.Unit == "" {
			return nil, fmt.Errorf("%w: la unidad no puede quedar vacía", domain.ErrInvalidInput)
		}
		sale.Unit = *in.Unit
	}
	if in.PricePerUnit != nil {
		if in.PricePerUnit.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		sale.PricePerUnit = *in.PricePerUnit
	}
	sale.UpdatedAt = time.Now()

	if err := uc.repo.Update(sale); err != nil {
		return nil, err
	}
	return uc.GetByID(sale.ID)
}

// Delete elimina una línea de venta.
func (uc *SaleUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// Recent devuelve las últimas ventas, opcionalmente de un solo cliente.
func (uc *SaleUseCase) Recent(customerID string) ([]dto.SaleRecordResponse, error) {
	rows, err := uc.repo.Recent(customerID, recentLimit)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(rows), nil
}

// Search busca ventas por rango de fechas, cliente y/o categoría.
func (uc *SaleUseCase) Search(req dto.SaleSearchRequest) (*dto.SaleSearchResponse, error) {
	filter := repository.SaleSearchFilter{
		CustomerID: req.CustomerID,
		Category:   req.Category,
	}
	var err error
	if filter.StartDate, filter.EndDate, err = parseRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	rows, err := uc.repo.Search(filter)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for i := range rows {
		revenue = revenue.Add(rows[i].Total)
	}
	return &dto.SaleSearchResponse{
		Items:        toSaleResponses(rows),
		Total:        len(rows),
		TotalRevenue: revenue,
	}, nil
}

func toSaleResponses(rows []repository.SaleRecordRow) []dto.SaleRecordResponse {
	out := make([]dto.SaleRecordResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.SaleRecordResponse{
			ID:           rows[i].ID,
			SaleDate:     rows[i].SaleDate.Format("2006-01-02"),
			Customer:     rows[i].CustomerName,
			ProductID:    rows[i].ProductID,
			Product:      rows[i].ProductName,
			Category:     rows[i].Category,
			Quantity:     rows[i].Quantity,
			Unit:         rows[i].Unit,
			PricePerUnit: rows[i].PricePerUnit,
			Total:        rows[i].Total,
		})
	}
	return out
}
