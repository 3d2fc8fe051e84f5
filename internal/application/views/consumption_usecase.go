package views

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
)

// ConsumptionUseCase es la vista de consumos de producción: eventos por lote
// con filtros de bodega, categoría y mes, más totales del período filtrado.
type ConsumptionUseCase struct {
	provider SnapshotProvider
	exporter TabularExporter
}

// NewConsumptionUseCase construye el caso de uso.
func NewConsumptionUseCase(provider SnapshotProvider, exporter TabularExporter) *ConsumptionUseCase {
	return &ConsumptionUseCase{provider: provider, exporter: exporter}
}

// View devuelve las filas filtradas, KPIs y los valores de los dropdowns
// (estos últimos se calculan sobre el dataset completo, no el filtrado).
func (uc *ConsumptionUseCase) View(ctx context.Context, f dto.ConsumptionFilter) (*dto.ConsumptionViewDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	table := snap.Consumption
	hasWarehouse := table.HasColumn("warehouse")
	hasCategory := table.HasColumn("category")

	warehouses := make(map[string]struct{})
	categories := make(map[string]struct{})
	months := make(map[string]struct{})
	for _, r := range table.Rows {
		if hasWarehouse {
			warehouses[r.Warehouse] = struct{}{}
		}
		if hasCategory {
			categories[r.Category] = struct{}{}
		}
		if m := monthLabel(r.BatchDate); m != "" {
			months[m] = struct{}{}
		}
	}

	summary := dto.ConsumptionSummaryDTO{
		TotalConsumed: decimal.Zero,
		TotalProduced: decimal.Zero,
		TotalBatchQty: decimal.Zero,
		TotalWastage:  decimal.Zero,
	}
	uniqueProducts := make(map[string]struct{})
	uniqueMaterials := make(map[string]struct{})

	rows := make([]dto.ConsumptionRowDTO, 0, len(table.Rows))
	for _, r := range table.Rows {
		if !matchesSearch(f.Search, r.MaterialCode, r.MaterialName, r.ProductName) {
			continue
		}
		if hasWarehouse && !sameValue(f.Warehouse, r.Warehouse) {
			continue
		}
		if hasCategory && !sameValue(f.Category, r.Category) {
			continue
		}
		if f.Month != "" && monthLabel(r.BatchDate) != f.Month {
			continue
		}

		rows = append(rows, dto.ConsumptionRowDTO{
			MaterialCode: r.MaterialCode,
			MaterialName: r.MaterialName,
			ProductName:  r.ProductName,
			BatchDate:    r.BatchDate,
			BatchQty:     r.BatchQty,
			ConsumedBOM:  r.ConsumedBOM,
			ProducedQty:  r.ProducedQty,
			WastageQty:   r.WastageQty,
			Warehouse:    r.Warehouse,
			Category:     r.Category,
		})

		summary.TotalConsumed = summary.TotalConsumed.Add(r.ConsumedBOM)
		summary.TotalProduced = summary.TotalProduced.Add(r.ProducedQty)
		summary.TotalBatchQty = summary.TotalBatchQty.Add(r.BatchQty)
		summary.TotalWastage = summary.TotalWastage.Add(r.WastageQty)
		if r.ProductName != "" {
			uniqueProducts[r.ProductName] = struct{}{}
		}
		if r.MaterialName != "" {
			uniqueMaterials[r.MaterialName] = struct{}{}
		}
	}
	summary.UniqueProducts = len(uniqueProducts)
	summary.UniqueMaterials = len(uniqueMaterials)

	return &dto.ConsumptionViewDTO{
		Meta: dto.ViewMeta{
			SnapshotID: snap.ID,
			LoadedAt:   snap.LoadedAt,
			RowCount:   len(rows),
		},
		Summary:    summary,
		Rows:       rows,
		Warehouses: collectSorted(warehouses),
		Categories: collectSorted(categories),
		Months:     sortedMonths(months),
	}, nil
}

var consumptionExportHeaders = []string{
	"Material Code", "Material Name", "Product Name", "Batch Date", "Batch Qty",
	"Consumed (As per BOM)", "Total Produced Qty", "Damage/Wastage", "Warehouse", "Category",
}

// Export serializa la vista filtrada con las mismas columnas que se muestran.
func (uc *ConsumptionUseCase) Export(ctx context.Context, f dto.ConsumptionFilter) ([]byte, error) {
	view, err := uc.View(ctx, f)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(view.Rows))
	for _, r := range view.Rows {
		var batchDate interface{}
		if r.BatchDate != nil {
			batchDate = r.BatchDate.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			r.MaterialCode, r.MaterialName, r.ProductName, batchDate,
			r.BatchQty.InexactFloat64(), r.ConsumedBOM.InexactFloat64(),
			r.ProducedQty.InexactFloat64(), r.WastageQty.InexactFloat64(),
			r.Warehouse, r.Category,
		})
	}
	return uc.exporter.WriteXLSX("Consumption", consumptionExportHeaders, rows)
}
