package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// SubmitUseCase confirma borradores: valida las líneas contra el catálogo,
// arma el objeto de valor y lo inserta completo en una transacción. Si una
// línea falla no se persiste ninguna.
type SubmitUseCase struct {
	tx           TxRunner
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	pdfGen       OrderPDFGenerator
	defaultUnit  string
	now          func() time.Time
}

// NewSubmitUseCase construye el caso de uso.
func NewSubmitUseCase(
	tx TxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	pdfGen OrderPDFGenerator,
	defaultUnit string,
) *SubmitUseCase {
	return &SubmitUseCase{
		tx:           tx,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		pdfGen:       pdfGen,
		defaultUnit:  defaultUnit,
		now:          time.Now,
	}
}

// SubmitProduction registra una tanda de producción completa. Cada línea
// genera un lote con su vencimiento calculado con la vida útil vigente del
// producto.
func (uc *SubmitUseCase) SubmitProduction(
	ctx context.Context,
	req dto.ProductionDraftRequest,
) ([]dto.ProductionRecordResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: la tanda no tiene líneas", domain.ErrInvalidInput)
	}

	batchDate, err := uc.parseDate(req.BatchDate)
	if err != nil {
		return nil, err
	}

	draft := NewProductionDraft(batchDate)
	categories := make(map[string]string) // productID → categoría, para la respuesta

	for _, in := range req.Items {
		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("producto %s: %w", in.ProductID, err)
		}
		categories[product.ID] = product.Category

		unit := in.Unit
		if unit == "" {
			unit = uc.defaultUnit
		}
		var productionDate time.Time
		if in.ProductionDate != "" {
			productionDate, err = uc.parseDate(in.ProductionDate)
			if err != nil {
				return nil, err
			}
		}
		if _, err := draft.AddItem(product, in.Quantity, unit, productionDate); err != nil {
			return nil, fmt.Errorf("producto %s: %w", in.ProductID, err)
		}
	}

	now := uc.now()
	items := draft.Items()
	lots := make([]entity.ProductionLot, len(items))
	for i, it := range items {
		lots[i] = entity.ProductionLot{
			ID:             uuid.New().String(),
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
			ProductionDate: it.ProductionDate,
			ExpiryDate:     it.ExpiryDate,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	err = uc.tx.Run(ctx, func(prodRepo repository.ProductionRepository, _ repository.SaleRepository) error {
		for i := range lots {
			if err := prodRepo.Create(&lots[i]); err != nil {
				return fmt.Errorf("lote del producto %s: %w", lots[i].ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductionRecordResponse, len(lots))
	for i, lot := range lots {
		out[i] = dto.ProductionRecordResponse{
			ID:             lot.ID,
			ProductionDate: lot.ProductionDate.Format("2006-01-02"),
			ExpiryDate:     lot.ExpiryDate.Format("2006-01-02"),
			ProductID:      lot.ProductID,
			Product:        items[i].ProductName,
			Category:       categories[lot.ProductID],
			Quantity:       lot.Quantity,
			Unit:           lot.Unit,
		}
	}
	return out, nil
}

// SubmitSale registra un pedido multi-producto para un cliente. Todas las
// líneas comparten cliente y fecha; el precio en cero toma el precio base.
func (uc *SubmitUseCase) SubmitSale(
	ctx context.Context,
	req dto.SaleDraftRequest,
) ([]dto.SaleRecordResponse, error) {
	draft, customer, categories, err := uc.buildSaleDraft(req)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	items := draft.Items()
	sales := make([]entity.Sale, len(items))
	for i, it := range items {
		sales[i] = entity.Sale{
			ID:           uuid.New().String(),
			ProductID:    it.ProductID,
			CustomerID:   draft.CustomerID(),
			Quantity:     it.Quantity,
			Unit:         it.Unit,
			PricePerUnit: it.PricePerUnit,
			SaleDate:     draft.SaleDate(),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	err = uc.tx.Run(ctx, func(_ repository.ProductionRepository, saleRepo repository.SaleRepository) error {
		for i := range sales {
			if err := saleRepo.Create(&sales[i]); err != nil {
				return fmt.Errorf("línea del producto %s: %w", sales[i].ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.SaleRecordResponse, len(sales))
	for i := range sales {
		out[i] = dto.SaleRecordResponse{
			ID:           sales[i].ID,
			SaleDate:     sales[i].SaleDate.Format("2006-01-02"),
			Customer:     customer.Name,
			ProductID:    sales[i].ProductID,
			Product:      items[i].ProductName,
			Category:     categories[sales[i].ProductID],
			Quantity:     sales[i].Quantity,
			Unit:         sales[i].Unit,
			PricePerUnit: sales[i].PricePerUnit,
			Total:        sales[i].Total(),
		}
	}
	return out, nil
}

// OrderPDF genera la confirmación de pedido en PDF sin registrar la venta.
// Valida el borrador igual que SubmitSale; sirve para revisar el pedido con
// el cliente antes de confirmarlo.
func (uc *SubmitUseCase) OrderPDF(ctx context.Context, req dto.SaleDraftRequest) ([]byte, error) {
	draft, customer, _, err := uc.buildSaleDraft(req)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateOrderPDF(ctx, customer, draft)
}

// buildSaleDraft valida el request y arma el borrador con el cliente resuelto
// y las categorías de los productos (para la respuesta).
func (uc *SubmitUseCase) buildSaleDraft(
	req dto.SaleDraftRequest,
) (*SaleDraft, *entity.Customer, map[string]string, error) {
	if len(req.Items) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: el pedido no tiene líneas", domain.ErrInvalidInput)
	}

	customer, err := uc.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cliente %s: %w", req.CustomerID, err)
	}

	saleDate, err := uc.parseDate(req.SaleDate)
	if err != nil {
		return nil, nil, nil, err
	}

	draft, err := NewSaleDraft(customer.ID, saleDate)
	if err != nil {
		return nil, nil, nil, err
	}
	categories := make(map[string]string)

	for _, in := range req.Items {
		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("producto %s: %w", in.ProductID, err)
		}
		categories[product.ID] = product.Category

		unit := in.Unit
		if unit == "" {
			unit = uc.defaultUnit
		}
		if _, err := draft.AddItem(product, in.Quantity, unit, in.PricePerUnit); err != nil {
			return nil, nil, nil, fmt.Errorf("producto %s: %w", in.ProductID, err)
		}
	}
	return draft, customer, categories, nil
}

// parseDate interpreta YYYY-MM-DD; vacío devuelve la fecha de hoy.
func (uc *SubmitUseCase) parseDate(s string) (time.Time, error) {
	if s == "" {
		now := uc.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}
