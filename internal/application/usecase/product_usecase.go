// Package usecase contiene los casos de uso CRUD del catálogo:
// productos, clientes, lotes de producción y ventas.
package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

const defaultDaysToExpiration = 90

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. El ID lo asigna el usuario y debe ser único;
// la categoría debe existir de antemano.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.ID == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: id y nombre son requeridos", domain.ErrInvalidInput)
	}
	if in.BasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio base no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.DaysToExpiration <= 0 {
		in.DaysToExpiration = defaultDaysToExpiration
	}

	existing, err := uc.repo.GetByID(in.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un producto con id %s", domain.ErrDuplicate, in.ID)
	}

	if err := uc.checkCategory(in.Category); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:               in.ID,
		Name:             in.Name,
		Description:      in.Description,
		Category:         in.Category,
		BasePrice:        in.BasePrice,
		DaysToExpiration: in.DaysToExpiration,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Cambiar la vida útil no toca los vencimientos
// de los lotes ya registrados.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		if err := uc.checkCategory(*in.Category); err != nil {
			return nil, err
		}
		product.Category = *in.Category
	}
	if in.BasePrice != nil {
		if in.BasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio base no puede ser negativo", domain.ErrInvalidInput)
		}
		product.BasePrice = *in.BasePrice
	}
	if in.DaysToExpiration != nil {
		if *in.DaysToExpiration <= 0 {
			return nil, fmt.Errorf("%w: la vida útil debe ser mayor que cero", domain.ErrInvalidInput)
		}
		product.DaysToExpiration = *in.DaysToExpiration
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Falla con ErrInUse si tiene ventas o lotes
// registrados; primero hay que eliminar esos registros.
func (uc *ProductUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	usage, err := uc.repo.CountUsage(id)
	if err != nil {
		return err
	}
	if usage.SalesCount > 0 || usage.ProductionCount > 0 {
		return fmt.Errorf("%w: %d ventas y %d lotes referencian el producto %s",
			domain.ErrInUse, usage.SalesCount, usage.ProductionCount, id)
	}
	return uc.repo.Delete(id)
}

// List devuelve los productos paginados.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Search busca productos por subcadena y/o categoría, con conteos de uso.
func (uc *ProductUseCase) Search(term, category string) (*dto.ProductSearchResponse, error) {
	rows, err := uc.repo.Search(term, category)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductSearchItem, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ProductSearchItem{
			ProductResponse: *toProductResponse(&rows[i].Product),
			TotalSales:      rows[i].SalesCount,
			TotalProduction: rows[i].ProductionCount,
		})
	}
	return &dto.ProductSearchResponse{Items: items, Total: len(items)}, nil
}

// Categories devuelve las categorías disponibles.
func (uc *ProductUseCase) Categories() ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (uc *ProductUseCase) checkCategory(name string) error {
	if name == "" {
		return fmt.Errorf("%w: categoría requerida", domain.ErrInvalidInput)
	}
	if _, err := uc.categoryRepo.GetByName(name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, name)
		}
		return err
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Category:         p.Category,
		BasePrice:        p.BasePrice,
		DaysToExpiration: p.DaysToExpiration,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
