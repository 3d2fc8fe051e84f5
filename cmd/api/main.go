package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/sproutlife/inventory-insights/internal/application/auth"
	"github.com/sproutlife/inventory-insights/internal/application/views"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
	"github.com/sproutlife/inventory-insights/internal/infrastructure/export"
	"github.com/sproutlife/inventory-insights/internal/infrastructure/workbook"
	httpRouter "github.com/sproutlife/inventory-insights/internal/interfaces/http"
	"github.com/sproutlife/inventory-insights/pkg/config"
	"github.com/sproutlife/inventory-insights/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("workbook", cfg.Source.WorkbookPath).
		Msg("iniciando aplicación")

	loader := workbook.NewLoader(cfg.Source, cfg.Planning, log)
	store := workbook.NewSnapshotStore(loader, log)

	// Carga inicial: si el libro no está, el servicio arranca igual y las
	// vistas responden 503 hasta que un refresh lo encuentre.
	if _, err := store.Refresh(context.Background()); err != nil {
		log.Warn().Err(err).Msg("carga inicial del libro de datos falló")
	}

	params := views.Params{
		CyclesPerYear: cfg.Planning.CyclesPerYear,
		Thresholds: planning.Thresholds{
			CriticalDays:             cfg.Planning.CriticalDays,
			LowDays:                  cfg.Planning.LowDays,
			ReplenishmentTriggerDays: cfg.Planning.ReplenishmentTriggerDays,
		},
		SOHLocations:      cfg.Planning.SOHLocations,
		TargetDaysMin:     cfg.Planning.TargetDaysMin,
		TargetDaysMax:     cfg.Planning.TargetDaysMax,
		TargetDaysDefault: cfg.Planning.TargetDaysDefault,
	}

	xlsxExporter := export.NewXLSXExporter()
	pdfGenerator := export.NewMarotoOrderList()

	inventoryUC := views.NewInventoryUseCase(store, xlsxExporter)
	forecastUC := views.NewForecastUseCase(store, params)
	replenishmentUC := views.NewReplenishmentUseCase(store, params, xlsxExporter, pdfGenerator)
	consumptionUC := views.NewConsumptionUseCase(store, xlsxExporter)
	varianceUC := views.NewVarianceUseCase(store, xlsxExporter)
	grnUC := views.NewGRNUseCase(store, xlsxExporter)

	authUC := appauth.NewAuthUseCase(appauth.Config{
		Secret:       cfg.JWT.Secret,
		ExpMinutes:   cfg.JWT.Expiration,
		Issuer:       cfg.JWT.Issuer,
		Username:     cfg.JWT.Username,
		PasswordHash: cfg.JWT.PasswordHash,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Insights API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		InventoryUC:     inventoryUC,
		ForecastUC:      forecastUC,
		ReplenishmentUC: replenishmentUC,
		ConsumptionUC:   consumptionUC,
		VarianceUC:      varianceUC,
		GRNUC:           grnUC,
		Snapshots:       store,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
