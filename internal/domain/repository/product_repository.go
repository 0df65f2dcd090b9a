package repository

import "github.com/jhoicas/cerveceria-api/internal/domain/entity"

// ProductUsage cuántos registros dependientes referencian un producto.
// Un producto con uso > 0 no se puede eliminar.
type ProductUsage struct {
	SalesCount      int
	ProductionCount int
}

// ProductSearchRow resultado crudo de la búsqueda de productos con conteos de uso.
type ProductSearchRow struct {
	Product         entity.Product
	SalesCount      int
	ProductionCount int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Product, error)
	// Search filtra por subcadena (id, nombre, descripción o categoría,
	// case-insensitive) y opcionalmente por categoría exacta.
	Search(term, category string) ([]ProductSearchRow, error)
	CountUsage(id string) (ProductUsage, error)
}
