package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/application/views"
)

// ForecastHandler sirve la vista de forecast con días de stock (protegido).
type ForecastHandler struct {
	uc *views.ForecastUseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *views.ForecastUseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// View godoc
// @Summary      Forecast con stock-on-hand y días de stock por ítem
// @Tags         forecast
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Subcadena sobre código y nombre"
// @Param        band    query  string  false  "critical, low o healthy"
// @Success      200  {object}  dto.ForecastViewDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/forecast [get]
func (h *ForecastHandler) View(c *fiber.Ctx) error {
	var f dto.ForecastFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	view, err := h.uc.View(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}
