package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/application/orders"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
)

// ProductionHandler maneja las peticiones HTTP para lotes de producción.
// El alta va por borrador de tanda (SubmitUseCase); el resto por el CRUD.
type ProductionHandler struct {
	submitUC *orders.SubmitUseCase
	uc       *usecase.ProductionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(submitUC *orders.SubmitUseCase, uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{submitUC: submitUC, uc: uc}
}

// Submit godoc
// @Summary      Registrar tanda de producción
// @Description  Inserta todas las líneas de la tanda en una sola transacción.
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductionDraftRequest  true  "Borrador de la tanda"
// @Success      201   {array}   dto.ProductionRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Submit(c *fiber.Ctx) error {
	var in dto.ProductionDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.submitUC.SubmitProduction(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Recent godoc
// @Summary      Últimos lotes registrados (30 días)
// @Tags         production
// @Produce      json
// @Success      200  {array}  dto.ProductionRecordResponse
// @Router       /api/production/recent [get]
func (h *ProductionHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar lotes de producción
// @Tags         production
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        category    query  string  false  "Categoría exacta"
// @Param        product     query  string  false  "Subcadena del nombre"
// @Success      200  {object}  dto.ProductionSearchResponse
// @Router       /api/production/search [get]
func (h *ProductionHandler) Search(c *fiber.Ctx) error {
	var req dto.ProductionSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Search(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         production
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.ProductionRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar lote
// @Description  Si cambia la fecha de producción, el vencimiento se recalcula.
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateProductionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductionRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/{id} [put]
func (h *ProductionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/{id} [delete]
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
