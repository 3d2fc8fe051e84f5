package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/application/views"
)

// GRNHandler sirve las recepciones de mercancía y el cumplimiento por PO (protegido).
type GRNHandler struct {
	uc *views.GRNUseCase
}

// NewGRNHandler construye el handler.
func NewGRNHandler(uc *views.GRNUseCase) *GRNHandler {
	return &GRNHandler{uc: uc}
}

// View godoc
// @Summary      Líneas GRN con filtros y KPIs
// @Tags         grn
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Subcadena sobre GRN, PO, proveedor e ítem"
// @Param        po_number  query  string  false  "Orden de compra exacta"
// @Param        vendor     query  string  false  "Proveedor exacto"
// @Param        warehouse  query  string  false  "Bodega exacta"
// @Success      200  {object}  dto.GRNViewDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/grn [get]
func (h *GRNHandler) View(c *fiber.Ctx) error {
	var f dto.GRNFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	view, err := h.uc.View(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// POFulfillment godoc
// @Summary      Cumplimiento por orden de compra
// @Tags         grn
// @Security     Bearer
// @Produce      json
// @Param        po_number  query  string  false  "Una PO concreta; vacío devuelve todas"
// @Success      200  {object}  dto.POFulfillmentViewDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/grn/po-fulfillment [get]
func (h *GRNHandler) POFulfillment(c *fiber.Ctx) error {
	view, err := h.uc.POFulfillment(c.Context(), c.Query("po_number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// Export godoc
// @Summary      Exportar las líneas GRN filtradas a XLSX
// @Tags         grn
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/grn/export [get]
func (h *GRNHandler) Export(c *fiber.Ctx) error {
	var f dto.GRNFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.Export(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendXLSX(c, "grn.xlsx", data)
}
