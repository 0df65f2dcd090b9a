package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

func newProductFixture() (*ProductUseCase, *memProductRepo, *memCategoryRepo) {
	products := newMemProductRepo()
	categories := newMemCategoryRepo("IPA", "Lager", "Stout")
	return NewProductUseCase(products, categories), products, categories
}

func seedProduct(t *testing.T, uc *ProductUseCase) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		ID:        "IPA-01",
		Name:      "IPA Dorada",
		Category:  "IPA",
		BasePrice: decimal.RequireFromString("4.50"),
	})
	require.NoError(t, err)
	return out
}

func TestProductCreate(t *testing.T) {
	uc, repo, _ := newProductFixture()

	out := seedProduct(t, uc)
	assert.Equal(t, "IPA-01", out.ID)
	// Sin vida útil explícita se aplica el valor por defecto.
	assert.Equal(t, 90, out.DaysToExpiration)

	stored, err := repo.GetByID("IPA-01")
	require.NoError(t, err)
	assert.Equal(t, "IPA Dorada", stored.Name)
}

func TestProductCreateValidaEntrada(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create(dto.CreateProductRequest{Name: "Sin ID", Category: "IPA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{ID: "X-01", Category: "IPA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{
		ID: "X-01", Name: "Precio negativo", Category: "IPA",
		BasePrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreateRechazaIDDuplicado(t *testing.T) {
	uc, _, _ := newProductFixture()
	seedProduct(t, uc)

	_, err := uc.Create(dto.CreateProductRequest{
		ID: "IPA-01", Name: "Otra", Category: "IPA",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreateRequiereCategoriaExistente(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create(dto.CreateProductRequest{
		ID: "X-01", Name: "Categoría fantasma", Category: "Porter",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = uc.Create(dto.CreateProductRequest{ID: "X-01", Name: "Sin categoría"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdateParcial(t *testing.T) {
	uc, _, _ := newProductFixture()
	seedProduct(t, uc)

	out, err := uc.Update("IPA-01", dto.UpdateProductRequest{
		Name:             strPtr("IPA Dorada Premium"),
		DaysToExpiration: intPtr(120),
	})
	require.NoError(t, err)
	assert.Equal(t, "IPA Dorada Premium", out.Name)
	assert.Equal(t, 120, out.DaysToExpiration)
	// Lo no enviado queda intacto.
	assert.Equal(t, "IPA", out.Category)
	assert.Equal(t, "4.50", out.BasePrice.StringFixed(2))
}

func TestProductUpdateValidaciones(t *testing.T) {
	uc, _, _ := newProductFixture()
	seedProduct(t, uc)

	_, err := uc.Update("IPA-01", dto.UpdateProductRequest{Name: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("IPA-01", dto.UpdateProductRequest{Category: strPtr("Porter")})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = uc.Update("IPA-01", dto.UpdateProductRequest{DaysToExpiration: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("NO-EXISTE", dto.UpdateProductRequest{Name: strPtr("Da igual")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDeleteBloqueadoPorUso(t *testing.T) {
	uc, repo, _ := newProductFixture()
	seedProduct(t, uc)
	repo.usage["IPA-01"] = repository.ProductUsage{SalesCount: 3, ProductionCount: 1}

	err := uc.Delete("IPA-01")
	assert.ErrorIs(t, err, domain.ErrInUse)
	assert.Empty(t, repo.deleted)

	// Sin registros dependientes sí se elimina.
	repo.usage["IPA-01"] = repository.ProductUsage{}
	require.NoError(t, uc.Delete("IPA-01"))
	assert.Equal(t, []string{"IPA-01"}, repo.deleted)

	assert.ErrorIs(t, uc.Delete("IPA-01"), domain.ErrNotFound)
}

func TestProductSearchConConteos(t *testing.T) {
	uc, repo, _ := newProductFixture()
	repo.searched = []repository.ProductSearchRow{
		{
			Product:         entity.Product{ID: "IPA-01", Name: "IPA Dorada", Category: "IPA"},
			SalesCount:      5,
			ProductionCount: 2,
		},
	}

	out, err := uc.Search("ipa", "")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, 5, out.Items[0].TotalSales)
	assert.Equal(t, 2, out.Items[0].TotalProduction)
}

func TestProductCategories(t *testing.T) {
	uc, _, _ := newProductFixture()

	out, err := uc.Categories()
	require.NoError(t, err)
	assert.Len(t, out, 3)
}
