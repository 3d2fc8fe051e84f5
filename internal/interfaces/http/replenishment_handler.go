package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/application/views"
)

// ReplenishmentHandler sirve el planificador de reposición (protegido).
type ReplenishmentHandler struct {
	uc *views.ReplenishmentUseCase
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc *views.ReplenishmentUseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc}
}

// Plan godoc
// @Summary      Plan de reposición ordenado por urgencia
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        search       query  string  false  "Subcadena sobre código y nombre"
// @Param        target_days  query  int     false  "Horizonte objetivo en días (se acota al rango permitido)"
// @Success      200  {object}  dto.ReplenishmentPlanDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/replenishment [get]
func (h *ReplenishmentHandler) Plan(c *fiber.Ctx) error {
	var f dto.ReplenishmentFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	plan, err := h.uc.Plan(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

// ExportXLSX godoc
// @Summary      Exportar el plan de reposición a XLSX
// @Tags         replenishment
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/replenishment/export [get]
func (h *ReplenishmentHandler) ExportXLSX(c *fiber.Ctx) error {
	var f dto.ReplenishmentFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.ExportXLSX(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendXLSX(c, "replenishment_plan.xlsx", data)
}

// ExportPDF godoc
// @Summary      Lista de pedidos imprimible en PDF
// @Tags         replenishment
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/replenishment/order-list.pdf [get]
func (h *ReplenishmentHandler) ExportPDF(c *fiber.Ctx) error {
	var f dto.ReplenishmentFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.ExportPDF(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, "order_list.pdf", data)
}
