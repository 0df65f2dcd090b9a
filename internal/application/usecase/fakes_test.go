package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
	usage    map[string]repository.ProductUsage
	searched []repository.ProductSearchRow
	deleted  []string
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{
		products: make(map[string]*entity.Product),
		usage:    make(map[string]repository.ProductUsage),
	}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	if _, ok := r.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	_ = limit
	_ = offset
	return out, nil
}

func (r *memProductRepo) Search(string, string) ([]repository.ProductSearchRow, error) {
	return r.searched, nil
}

func (r *memProductRepo) CountUsage(id string) (repository.ProductUsage, error) {
	return r.usage[id], nil
}

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemCategoryRepo(names ...string) *memCategoryRepo {
	r := &memCategoryRepo{categories: make(map[string]*entity.Category)}
	for i, name := range names {
		r.categories[name] = &entity.Category{ID: name, Name: name, CreatedAt: time.Now().Add(time.Duration(i))}
	}
	return r
}

func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	c, ok := r.categories[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

type memCustomerRepo struct {
	customers map[string]*entity.Customer
	sales     map[string]int // id → ventas registradas
	totals    []repository.CustomerTotalsRow
	deleted   []string
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{
		customers: make(map[string]*entity.Customer),
		sales:     make(map[string]int),
	}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *memCustomerRepo) GetByName(name string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *memCustomerRepo) CountSales(id string) (int, error) {
	return r.sales[id], nil
}

func (r *memCustomerRepo) SearchWithTotals(string) ([]repository.CustomerTotalsRow, error) {
	return r.totals, nil
}

type memProductionRepo struct {
	lots   map[string]*entity.ProductionLot
	recent []repository.ProductionRecordRow
	found  []repository.ProductionRecordRow
	filter repository.ProductionSearchFilter
}

func newMemProductionRepo() *memProductionRepo {
	return &memProductionRepo{lots: make(map[string]*entity.ProductionLot)}
}

func (r *memProductionRepo) Create(lot *entity.ProductionLot) error {
	clone := *lot
	r.lots[lot.ID] = &clone
	return nil
}

func (r *memProductionRepo) GetByID(id string) (*entity.ProductionLot, error) {
	lot, ok := r.lots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *lot
	return &clone, nil
}

func (r *memProductionRepo) Update(lot *entity.ProductionLot) error {
	if _, ok := r.lots[lot.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *lot
	r.lots[lot.ID] = &clone
	return nil
}

func (r *memProductionRepo) Delete(id string) error {
	if _, ok := r.lots[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.lots, id)
	return nil
}

func (r *memProductionRepo) Recent(time.Time, int) ([]repository.ProductionRecordRow, error) {
	return r.recent, nil
}

func (r *memProductionRepo) Search(filter repository.ProductionSearchFilter) ([]repository.ProductionRecordRow, error) {
	r.filter = filter
	return r.found, nil
}

type memSaleRepo struct {
	sales  map[string]*entity.Sale
	recent []repository.SaleRecordRow
	found  []repository.SaleRecordRow
	filter repository.SaleSearchFilter
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	clone := *sale
	r.sales[sale.ID] = &clone
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *sale
	return &clone, nil
}

func (r *memSaleRepo) Update(sale *entity.Sale) error {
	if _, ok := r.sales[sale.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *sale
	r.sales[sale.ID] = &clone
	return nil
}

func (r *memSaleRepo) Delete(id string) error {
	if _, ok := r.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *memSaleRepo) Recent(string, int) ([]repository.SaleRecordRow, error) {
	return r.recent, nil
}

func (r *memSaleRepo) Search(filter repository.SaleSearchFilter) ([]repository.SaleRecordRow, error) {
	r.filter = filter
	return r.found, nil
}
