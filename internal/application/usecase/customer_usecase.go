package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. El nombre es único.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente nuevo.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	if err := uc.checkNameFree(in.Name); err != nil {
		return nil, err
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		ContactInfo: in.ContactInfo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza un cliente. Si cambia el nombre, el nuevo debe estar libre.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != customer.Name {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		if err := uc.checkNameFree(*in.Name); err != nil {
			return nil, err
		}
		customer.Name = *in.Name
	}
	if in.ContactInfo != nil {
		customer.ContactInfo = *in.ContactInfo
	}
	customer.UpdatedAt = time.Now()

	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente. Falla con ErrInUse si tiene ventas registradas.
func (uc *CustomerUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	sales, err := uc.repo.CountSales(id)
	if err != nil {
		return err
	}
	if sales > 0 {
		return fmt.Errorf("%w: %d ventas referencian el cliente %s", domain.ErrInUse, sales, id)
	}
	return uc.repo.Delete(id)
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Search busca clientes por nombre o contacto, con sus totales históricos.
func (uc *CustomerUseCase) Search(term string) (*dto.CustomerSearchResponse, error) {
	rows, err := uc.repo.SearchWithTotals(term)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerSearchItem, 0, len(rows))
	for i := range rows {
		items = append(items, dto.CustomerSearchItem{
			CustomerResponse: *toCustomerResponse(&rows[i].Customer),
			TotalOrders:      rows[i].TotalOrders,
			TotalRevenue:     rows[i].TotalRevenue,
		})
	}
	return &dto.CustomerSearchResponse{Items: items, Total: len(items)}, nil
}

func (uc *CustomerUseCase) checkNameFree(name string) error {
	existing, err := uc.repo.GetByName(name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: ya existe un cliente llamado %s", domain.ErrDuplicate, name)
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		ContactInfo: c.ContactInfo,
	}
}
