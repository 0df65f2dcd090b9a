package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

func seedCustomer(t *testing.T, uc *CustomerUseCase, name string) *dto.CustomerResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateCustomerRequest{Name: name, ContactInfo: "tel 555-0101"})
	require.NoError(t, err)
	return out
}

func TestCustomerCreateAsignaID(t *testing.T) {
	uc := NewCustomerUseCase(newMemCustomerRepo())

	out := seedCustomer(t, uc, "Bar La Esquina")
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Bar La Esquina", out.Name)

	_, err := uc.Create(dto.CreateCustomerRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerNombreUnico(t *testing.T) {
	uc := NewCustomerUseCase(newMemCustomerRepo())
	seedCustomer(t, uc, "Bar La Esquina")

	_, err := uc.Create(dto.CreateCustomerRequest{Name: "Bar La Esquina"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerUpdateCambioDeNombre(t *testing.T) {
	uc := NewCustomerUseCase(newMemCustomerRepo())
	first := seedCustomer(t, uc, "Bar La Esquina")
	seedCustomer(t, uc, "Distribuidora Sur")

	// Cambiar a un nombre tomado falla; conservar el propio no.
	_, err := uc.Update(first.ID, dto.UpdateCustomerRequest{Name: strPtr("Distribuidora Sur")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := uc.Update(first.ID, dto.UpdateCustomerRequest{
		Name:        strPtr("Bar La Esquina"),
		ContactInfo: strPtr("tel 555-0202"),
	})
	require.NoError(t, err)
	assert.Equal(t, "tel 555-0202", out.ContactInfo)

	out, err = uc.Update(first.ID, dto.UpdateCustomerRequest{Name: strPtr("Bar Nuevo")})
	require.NoError(t, err)
	assert.Equal(t, "Bar Nuevo", out.Name)
}

func TestCustomerDeleteBloqueadoPorVentas(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := NewCustomerUseCase(repo)
	customer := seedCustomer(t, uc, "Bar La Esquina")
	repo.sales[customer.ID] = 4

	err := uc.Delete(customer.ID)
	assert.ErrorIs(t, err, domain.ErrInUse)
	assert.Empty(t, repo.deleted)

	repo.sales[customer.ID] = 0
	require.NoError(t, uc.Delete(customer.ID))
	assert.Equal(t, []string{customer.ID}, repo.deleted)

	assert.ErrorIs(t, uc.Delete(customer.ID), domain.ErrNotFound)
}

func TestCustomerSearchConTotales(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := NewCustomerUseCase(repo)
	repo.totals = []repository.CustomerTotalsRow{
		{
			Customer:     entity.Customer{ID: "c1", Name: "Bar La Esquina"},
			TotalOrders:  12,
			TotalRevenue: dec(540),
		},
	}

	out, err := uc.Search("esquina")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, 12, out.Items[0].TotalOrders)
	assert.True(t, out.Items[0].TotalRevenue.Equal(dec(540)))
}
