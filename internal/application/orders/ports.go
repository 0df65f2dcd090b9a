package orders

import (
	"context"

	"github.com/jhoicas/cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos y le entrega
// repositorios ligados a esa transacción. Si fn devuelve error se hace
// rollback; si devuelve nil se hace commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productionRepo repository.ProductionRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// OrderPDFGenerator genera la confirmación de pedido en PDF a partir de un
// borrador ya validado. No persiste nada.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, customer *entity.Customer, draft *SaleDraft) ([]byte, error)
}
