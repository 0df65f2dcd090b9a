package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/application/orders"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
)

// SaleHandler maneja las peticiones HTTP para pedidos y líneas de venta.
type SaleHandler struct {
	submitUC *orders.SubmitUseCase
	uc       *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(submitUC *orders.SubmitUseCase, uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{submitUC: submitUC, uc: uc}
}

// Submit godoc
// @Summary      Registrar pedido
// @Description  Inserta todas las líneas del pedido en una sola transacción.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleDraftRequest  true  "Borrador del pedido"
// @Success      201   {array}   dto.SaleRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *SaleHandler) Submit(c *fiber.Ctx) error {
	var in dto.SaleDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.submitUC.SubmitSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF godoc
// @Summary      Confirmación de pedido en PDF
// @Description  Genera el PDF del borrador sin registrar la venta.
// @Tags         orders
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.SaleDraftRequest  true  "Borrador del pedido"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/pdf [post]
func (h *SaleHandler) PDF(c *fiber.Ctx) error {
	var in dto.SaleDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	pdfBytes, err := h.submitUC.OrderPDF(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido.pdf"`)
	return c.Send(pdfBytes)
}

// Recent godoc
// @Summary      Últimas ventas registradas
// @Tags         orders
// @Produce      json
// @Param        customer_id  query  string  false  "Filtrar por cliente"
// @Success      200  {array}  dto.SaleRecordResponse
// @Router       /api/orders/recent [get]
func (h *SaleHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.Query("customer_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar ventas
// @Tags         orders
// @Produce      json
// @Param        start_date   query  string  false  "YYYY-MM-DD"
// @Param        end_date     query  string  false  "YYYY-MM-DD"
// @Param        customer_id  query  string  false  "Cliente"
// @Param        category     query  string  false  "Categoría exacta"
// @Success      200  {object}  dto.SaleSearchResponse
// @Router       /api/orders/search [get]
func (h *SaleHandler) Search(c *fiber.Ctx) error {
	var req dto.SaleSearchRequest
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
// @Summary      Obtener línea de venta por ID
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.SaleRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar línea de venta
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.UpdateSaleRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SaleRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
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
// @Summary      Eliminar línea de venta
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
