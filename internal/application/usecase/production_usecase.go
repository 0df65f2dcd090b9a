package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

const (
	recentDays  = 30 // ventana del listado de registros recientes
	recentLimit = 10
)

// ProductionUseCase consulta y edición de lotes de producción ya registrados.
// El alta de lotes va por el borrador de tanda (paquete orders).
type ProductionUseCase struct {
	repo        repository.ProductionRepository
	productRepo repository.ProductRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(repo repository.ProductionRepository, productRepo repository.ProductRepository) *ProductionUseCase {
	return &ProductionUseCase{repo: repo, productRepo: productRepo}
}

// GetByID obtiene un lote con los datos del producto resueltos.
func (uc *ProductionUseCase) GetByID(id string) (*dto.ProductionRecordResponse, error) {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(lot.ProductID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductionRecordResponse{
		ID:             lot.ID,
		ProductionDate: lot.ProductionDate.Format("2006-01-02"),
		ExpiryDate:     lot.ExpiryDate.Format("2006-01-02"),
		ProductID:      lot.ProductID,
		Product:        product.Name,
		Category:       product.Category,
		Quantity:       lot.Quantity,
		Unit:           lot.Unit,
	}, nil
}

// Update edita un lote. Si cambia la fecha de producción, el vencimiento se
// recalcula con la vida útil vigente del producto.
func (uc *ProductionUseCase) Update(id string, in dto.UpdateProductionRequest) (*dto.ProductionRecordResponse, error) {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Quantity != nil {
		if !in.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
		}
		lot.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		if *in.Unit == "" {
			return nil, fmt.Errorf("%w: la unidad no puede quedar vacía", domain.ErrInvalidInput)
		}
		lot.Unit = *in.Unit
	}
	if in.ProductionDate != nil {
		newDate, err := time.Parse("2006-01-02", *in.ProductionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, *in.ProductionDate)
		}
		product, err := uc.productRepo.GetByID(lot.ProductID)
		if err != nil {
			return nil, err
		}
		lot.ProductionDate = newDate
		lot.ExpiryDate = product.ExpiryFor(newDate)
	}
	lot.UpdatedAt = time.Now()

	if err := uc.repo.Update(lot); err != nil {
		return nil, err
	}
	return uc.GetByID(lot.ID)
}

// Delete elimina un lote.
func (uc *ProductionUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// Recent devuelve los últimos lotes registrados en los últimos 30 días.
func (uc *ProductionUseCase) Recent() ([]dto.ProductionRecordResponse, error) {
	since := time.Now().AddDate(0, 0, -recentDays)
	rows, err := uc.repo.Recent(since, recentLimit)
	if err != nil {
		return nil, err
	}
	return toProductionResponses(rows), nil
}

// Search busca lotes por rango de fechas, categoría y/o nombre de producto.
func (uc *ProductionUseCase) Search(req dto.ProductionSearchRequest) (*dto.ProductionSearchResponse, error) {
	filter := repository.ProductionSearchFilter{
		Category:    req.Category,
		ProductName: req.Product,
	}
	var err error
	if filter.StartDate, filter.EndDate, err = parseRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	rows, err := uc.repo.Search(filter)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i := range rows {
		total = total.Add(rows[i].Quantity)
	}
	return &dto.ProductionSearchResponse{
		Items:         toProductionResponses(rows),
		Total:         len(rows),
		TotalQuantity: total,
	}, nil
}

func toProductionResponses(rows []repository.ProductionRecordRow) []dto.ProductionRecordResponse {
	out := make([]dto.ProductionRecordResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ProductionRecordResponse{
			ID:             rows[i].ID,
			ProductionDate: rows[i].ProductionDate.Format("2006-01-02"),
			ExpiryDate:     rows[i].ExpiryDate.Format("2006-01-02"),
			ProductID:      rows[i].ProductID,
			Product:        rows[i].ProductName,
			Category:       rows[i].Category,
			Quantity:       rows[i].Quantity,
			Unit:           rows[i].Unit,
		})
	}
	return out
}

// parseRange interpreta fechas YYYY-MM-DD opcionales de un filtro de búsqueda.
func parseRange(start, end string) (time.Time, time.Time, error) {
	var s, e time.Time
	var err error
	if start != "" {
		if s, err = time.Parse("2006-01-02", start); err != nil {
			return s, e, fmt.Errorf("%w: fecha inicial inválida %q", domain.ErrInvalidInput, start)
		}
	}
	if end != "" {
		if e, err = time.Parse("2006-01-02", end); err != nil {
			return s, e, fmt.Errorf("%w: fecha final inválida %q", domain.ErrInvalidInput, end)
		}
	}
	if !s.IsZero() && !e.IsZero() && e.Before(s) {
		return s, e, fmt.Errorf("%w: el rango termina antes de empezar", domain.ErrInvalidInput)
	}
	return s, e, nil
}
