package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sproutlife/inventory-insights/internal/application/views"
)

// SnapshotHandler expone el refresh del libro de datos (protegido).
type SnapshotHandler struct {
	provider views.SnapshotProvider
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(provider views.SnapshotProvider) *SnapshotHandler {
	return &SnapshotHandler{provider: provider}
}

// Refresh godoc
// @Summary      Recargar el libro de datos y publicar un snapshot nuevo
// @Description  Si la recarga falla, el snapshot vigente sigue sirviendo las vistas.
// @Tags         snapshot
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/snapshot/refresh [post]
func (h *SnapshotHandler) Refresh(c *fiber.Ctx) error {
	snap, err := h.provider.Refresh(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"snapshot_id": snap.ID,
		"loaded_at":   snap.LoadedAt,
	})
}
