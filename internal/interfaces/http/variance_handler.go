package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/application/views"
)

// VarianceHandler sirve la comparación consumo vs forecast (protegido).
type VarianceHandler struct {
	uc *views.VarianceUseCase
}

// NewVarianceHandler construye el handler.
func NewVarianceHandler(uc *views.VarianceUseCase) *VarianceHandler {
	return &VarianceHandler{uc: uc}
}

// View godoc
// @Summary      Consumo real vs forecast por material
// @Tags         variance
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Subcadena sobre material y producto"
// @Param        month      query  string  false  "Mes de lote, formato Jan-2006"
// @Param        direction  query  string  false  "over o under"
// @Success      200  {object}  dto.VarianceViewDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/variance [get]
func (h *VarianceHandler) View(c *fiber.Ctx) error {
	var f dto.VarianceFilter
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
// @Summary      Exportar la comparación filtrada a XLSX
// @Tags         variance
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/variance/export [get]
func (h *VarianceHandler) Export(c *fiber.Ctx) error {
	var f dto.VarianceFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.Export(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendXLSX(c, "consumption_vs_forecast.xlsx", data)
}
