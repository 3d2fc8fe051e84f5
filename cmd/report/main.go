// report genera la lista de pedidos de reposición fuera de línea: lee el
// libro de datos y escribe el plan en XLSX y PDF, sin levantar el servidor.
//
// Uso: go run ./cmd/report [directorio-de-salida]
// Por defecto escribe replenishment_plan.xlsx y order_list.pdf en el
// directorio actual. El libro y los umbrales se toman de la configuración
// (WORKBOOK_PATH, TARGET_DAYS_DEFAULT, etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/application/views"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
	"github.com/sproutlife/inventory-insights/internal/infrastructure/export"
	"github.com/sproutlife/inventory-insights/internal/infrastructure/workbook"
	"github.com/sproutlife/inventory-insights/pkg/config"
	"github.com/sproutlife/inventory-insights/pkg/logger"
)

func main() {
	outDir := "."
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	loader := workbook.NewLoader(cfg.Source, cfg.Planning, log)
	store := workbook.NewSnapshotStore(loader, log)

	ctx := context.Background()
	if _, err := store.Refresh(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Cargar libro de datos: %v\n", err)
		os.Exit(1)
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
	uc := views.NewReplenishmentUseCase(store, params, export.NewXLSXExporter(), export.NewMarotoOrderList())

	plan, err := uc.Plan(ctx, dto.ReplenishmentFilter{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar plan: %v\n", err)
		os.Exit(1)
	}

	xlsxData, err := uc.ExportXLSX(ctx, dto.ReplenishmentFilter{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Exportar XLSX: %v\n", err)
		os.Exit(1)
	}
	xlsxPath := filepath.Join(outDir, "replenishment_plan.xlsx")
	if err := os.WriteFile(xlsxPath, xlsxData, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", xlsxPath, err)
		os.Exit(1)
	}

	pdfData, err := uc.ExportPDF(ctx, dto.ReplenishmentFilter{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Exportar PDF: %v\n", err)
		os.Exit(1)
	}
	pdfPath := filepath.Join(outDir, "order_list.pdf")
	if err := os.WriteFile(pdfPath, pdfData, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", pdfPath, err)
		os.Exit(1)
	}

	fmt.Printf("Plan generado: %d ítems bajo el umbral (%d sin stock)\n",
		plan.Summary.CriticalItems, plan.Summary.ZeroStockItems)
	fmt.Printf("  %s\n  %s\n", xlsxPath, pdfPath)
}
