package views

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/domain/entity"
)

// InventoryUseCase sirve las vistas RM Inventory y FG Inventory: filas crudas
// del snapshot con búsqueda, filtros de ubicación/categoría y totales.
type InventoryUseCase struct {
	provider SnapshotProvider
	exporter TabularExporter
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(provider SnapshotProvider, exporter TabularExporter) *InventoryUseCase {
	return &InventoryUseCase{provider: provider, exporter: exporter}
}

// RMView vista de inventario de materia prima. El loader ya restringió las
// filas a las 13 ubicaciones operativas válidas del despliegue.
func (uc *InventoryUseCase) RMView(ctx context.Context, f dto.InventoryFilter) (*dto.InventoryViewDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return buildInventoryView(snap, snap.RMInventory, f), nil
}

// FGView vista de inventario de producto terminado (sin allow-list de ubicaciones).
func (uc *InventoryUseCase) FGView(ctx context.Context, f dto.InventoryFilter) (*dto.InventoryViewDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return buildInventoryView(snap, snap.FGInventory, f), nil
}

var inventoryExportHeaders = []string{
	"Item SKU", "Item Name", "Warehouse", "Category", "UoM",
	"Qty Available", "Qty Inward", "Qty On Hold", "Value (No Tax)", "Batch Number",
}

// ExportRM serializa la vista RM filtrada con las mismas columnas y orden que se muestran.
func (uc *InventoryUseCase) ExportRM(ctx context.Context, f dto.InventoryFilter) ([]byte, error) {
	view, err := uc.RMView(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.exporter.WriteXLSX("RM Inventory", inventoryExportHeaders, inventoryExportRows(view))
}

// ExportFG serializa la vista FG filtrada.
func (uc *InventoryUseCase) ExportFG(ctx context.Context, f dto.InventoryFilter) ([]byte, error) {
	view, err := uc.FGView(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.exporter.WriteXLSX("FG Inventory", inventoryExportHeaders, inventoryExportRows(view))
}

func inventoryExportRows(view *dto.InventoryViewDTO) [][]interface{} {
	rows := make([][]interface{}, 0, len(view.Rows))
	for _, r := range view.Rows {
		rows = append(rows, []interface{}{
			r.ItemCode, r.ItemName, r.Location, r.Category, r.UoM,
			r.QtyAvailable.InexactFloat64(), r.QtyInward.InexactFloat64(),
			r.QtyOnHold.InexactFloat64(), r.ValueNoTax.InexactFloat64(), r.BatchNumber,
		})
	}
	return rows
}

func buildInventoryView(snap *entity.Snapshot, table entity.Table[entity.InventoryRecord], f dto.InventoryFilter) *dto.InventoryViewDTO {
	hasCategories := table.HasColumn("category")

	locations := make(map[string]struct{})
	categories := make(map[string]struct{})
	for _, r := range table.Rows {
		locations[r.Location] = struct{}{}
		if hasCategories {
			categories[r.Category] = struct{}{}
		}
	}

	summary := dto.InventorySummaryDTO{
		TotalQtyAvailable: decimal.Zero,
		TotalQtyInward:    decimal.Zero,
		TotalQtyOnHold:    decimal.Zero,
		TotalValueNoTax:   decimal.Zero,
	}
	uniqueItems := make(map[string]struct{})

	rows := make([]dto.InventoryRowDTO, 0, len(table.Rows))
	for _, r := range table.Rows {
		if !matchesSearch(f.Search, r.ItemCode, r.ItemName, r.BatchNumber, r.Location, r.Category) {
			continue
		}
		if !sameValue(f.Location, r.Location) {
			continue
		}
		// Sin columna de categoría no se ofrece ese filtro; uno recibido se ignora.
		if hasCategories && !sameValue(f.Category, r.Category) {
			continue
		}

		rows = append(rows, dto.InventoryRowDTO{
			ItemCode:     r.ItemCode,
			ItemName:     r.ItemName,
			Location:     r.Location,
			Category:     r.Category,
			UoM:          r.UoM,
			QtyAvailable: r.QtyAvailable,
			QtyInward:    r.QtyInward,
			QtyOnHold:    r.QtyOnHold,
			ValueNoTax:   r.ValueNoTax,
			ValueWithTax: r.ValueWithTax,
			BatchNumber:  r.BatchNumber,
			MfgDate:      r.MfgDate,
			ExpiryDate:   r.ExpiryDate,
		})

		summary.TotalQtyAvailable = summary.TotalQtyAvailable.Add(r.QtyAvailable)
		summary.TotalQtyInward = summary.TotalQtyInward.Add(r.QtyInward)
		summary.TotalQtyOnHold = summary.TotalQtyOnHold.Add(r.QtyOnHold)
		summary.TotalValueNoTax = summary.TotalValueNoTax.Add(r.ValueNoTax)
		uniqueItems[r.ItemCode] = struct{}{}
	}
	summary.UniqueItems = len(uniqueItems)

	return &dto.InventoryViewDTO{
		Meta: dto.ViewMeta{
			SnapshotID: snap.ID,
			LoadedAt:   snap.LoadedAt,
			RowCount:   len(rows),
		},
		Summary:       summary,
		Rows:          rows,
		Locations:     collectSorted(locations),
		Categories:    collectSorted(categories),
		HasCategories: hasCategories,
	}
}
