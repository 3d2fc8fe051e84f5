package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/application/views"
)

// ConsumptionHandler sirve la vista de consumos de producción (protegido).
type ConsumptionHandler struct {
	uc *views.ConsumptionUseCase
}

// NewConsumptionHandler construye el handler.
func NewConsumptionHandler(uc *views.ConsumptionUseCase) *ConsumptionHandler {
	return &ConsumptionHandler{uc: uc}
}

// View godoc
// @Summary      Consumos de producción por lote
// @Tags         consumption
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Subcadena sobre material y producto"
// @Param        warehouse  query  string  false  "Bodega exacta (si la hoja la trae)"
// @Param        category   query  string  false  "Categoría exacta (si la hoja la trae)"
// @Param        month      query  string  false  "Mes de lote, formato Jan-2006"
// @Success      200  {object}  dto.ConsumptionViewDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/consumption [get]
func (h *ConsumptionHandler) View(c *fiber.Ctx) error {
	var f dto.ConsumptionFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	view, err := h.uc.View(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// Export godoc
// @Summary      Exportar consumos filtrados a XLSX
// @Tags         consumption
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/consumption/export [get]
func (h *ConsumptionHandler) Export(c *fiber.Ctx) error {
	var f dto.ConsumptionFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.Export(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendXLSX(c, "consumption.xlsx", data)
}
