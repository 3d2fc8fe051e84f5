package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sproutlife/inventory-insights/internal/application/auth"
	"github.com/sproutlife/inventory-insights/internal/application/views"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	InventoryUC     *views.InventoryUseCase
	ForecastUC      *views.ForecastUseCase
	ReplenishmentUC *views.ReplenishmentUseCase
	ConsumptionUC   *views.ConsumptionUseCase
	VarianceUC      *views.VarianceUseCase
	GRNUC           *views.GRNUseCase
	Snapshots       views.SnapshotProvider
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario RM/FG (protegido)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/rm", inventoryHandler.RMView)
	inv.Get("/rm/export", inventoryHandler.ExportRM)
	inv.Get("/fg", inventoryHandler.FGView)
	inv.Get("/fg/export", inventoryHandler.ExportFG)

	// Forecast (protegido)
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	protected.Get("/forecast", forecastHandler.View)

	// Reposición (protegido)
	rep := protected.Group("/replenishment")
	replenishmentHandler := NewReplenishmentHandler(deps.ReplenishmentUC)
	rep.Get("/", replenishmentHandler.Plan)
	rep.Get("/export", replenishmentHandler.ExportXLSX)
	rep.Get("/order-list.pdf", replenishmentHandler.ExportPDF)

	// Consumos (protegido)
	con := protected.Group("/consumption")
	consumptionHandler := NewConsumptionHandler(deps.ConsumptionUC)
	con.Get("/", consumptionHandler.View)
	con.Get("/export", consumptionHandler.Export)

	// Consumo vs forecast (protegido)
	varGroup := protected.Group("/variance")
	varianceHandler := NewVarianceHandler(deps.VarianceUC)
	varGroup.Get("/", varianceHandler.View)
	varGroup.Get("/export", varianceHandler.Export)

	// GRN (protegido)
	grn := protected.Group("/grn")
	grnHandler := NewGRNHandler(deps.GRNUC)
	grn.Get("/", grnHandler.View)
	grn.Get("/po-fulfillment", grnHandler.POFulfillment)
	grn.Get("/export", grnHandler.Export)

	// Snapshot (protegido)
	snapshotHandler := NewSnapshotHandler(deps.Snapshots)
	protected.Post("/snapshot/refresh", snapshotHandler.Refresh)
}
