package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/application/views"
)

// InventoryHandler sirve las vistas RM Inventory y FG Inventory (protegido).
type InventoryHandler struct {
	uc *views.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *views.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RMView godoc
// @Summary      Inventario de materia prima
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Subcadena sobre SKU, nombre, lote, ubicación"
// @Param        location  query  string  false  "Ubicación exacta"
// @Param        category  query  string  false  "Categoría exacta (si la hoja la trae)"
// @Success      200  {object}  dto.InventoryViewDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/rm [get]
func (h *InventoryHandler) RMView(c *fiber.Ctx) error {
	var f dto.InventoryFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	view, err := h.uc.RMView(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// FGView godoc
// @Summary      Inventario de producto terminado
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryViewDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventory/fg [get]
func (h *InventoryHandler) FGView(c *fiber.Ctx) error {
	var f dto.InventoryFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	view, err := h.uc.FGView(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// ExportRM godoc
// @Summary      Exportar inventario RM filtrado a XLSX
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/inventory/rm/export [get]
func (h *InventoryHandler) ExportRM(c *fiber.Ctx) error {
	var f dto.InventoryFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.ExportRM(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendXLSX(c, "rm_inventory.xlsx", data)
}

// ExportFG godoc
// @Summary      Exportar inventario FG filtrado a XLSX
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/inventory/fg/export [get]
func (h *InventoryHandler) ExportFG(c *fiber.Ctx) error {
	var f dto.InventoryFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.ExportFG(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendXLSX(c, "fg_inventory.xlsx", data)
}
