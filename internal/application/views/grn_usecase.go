package views

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
)

// GRNUseCase sirve la vista de recepciones de mercancía y los resúmenes de
// cumplimiento por orden de compra.
type GRNUseCase struct {
	provider SnapshotProvider
	exporter TabularExporter
}

// NewGRNUseCase construye el caso de uso.
func NewGRNUseCase(provider SnapshotProvider, exporter TabularExporter) *GRNUseCase {
	return &GRNUseCase{provider: provider, exporter: exporter}
}

// View devuelve las líneas GRN filtradas, KPIs y los valores de los dropdowns.
func (uc *GRNUseCase) View(ctx context.Context, f dto.GRNFilter) (*dto.GRNViewDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	pos := make(map[string]struct{})
	vendors := make(map[string]struct{})
	warehouses := make(map[string]struct{})
	for _, r := range snap.GRN.Rows {
		if r.HasPO() {
			pos[strings.TrimSpace(r.PONumber)] = struct{}{}
		}
		vendors[r.Vendor] = struct{}{}
		warehouses[r.Warehouse] = struct{}{}
	}

	summary := dto.GRNSummaryDTO{
		TotalOrdered:  decimal.Zero,
		TotalReceived: decimal.Zero,
		TotalPending:  decimal.Zero,
		TotalRejected: decimal.Zero,
	}
	grnNumbers := make(map[string]struct{})

	rows := make([]dto.GRNRowDTO, 0, len(snap.GRN.Rows))
	for _, r := range snap.GRN.Rows {
		if !matchesSearch(f.Search, r.GRNNumber, r.PONumber, r.Vendor, r.ItemCode) {
			continue
		}
		if !sameValue(f.PONumber, r.PONumber) {
			continue
		}
		if !sameValue(f.Vendor, r.Vendor) {
			continue
		}
		if !sameValue(f.Warehouse, r.Warehouse) {
			continue
		}

		rows = append(rows, dto.GRNRowDTO{
			GRNNumber:    r.GRNNumber,
			GRNDate:      r.GRNDate,
			Vendor:       r.Vendor,
			PONumber:     r.PONumber,
			ItemCode:     r.ItemCode,
			QtyOrdered:   r.QtyOrdered,
			QtyReceived:  r.QtyReceived,
			QtyRejected:  r.QtyRejected,
			RejectionPct: r.RejectionPct,
			ValueNoTax:   r.ValueNoTax,
			ValueWithTax: r.ValueWithTax,
			Warehouse:    r.Warehouse,
		})

		summary.TotalOrdered = summary.TotalOrdered.Add(r.QtyOrdered)
		summary.TotalReceived = summary.TotalReceived.Add(r.QtyReceived)
		summary.TotalRejected = summary.TotalRejected.Add(r.QtyRejected)
		if r.GRNNumber != "" {
			grnNumbers[r.GRNNumber] = struct{}{}
		}
	}
	summary.TotalPending = planning.PendingQty(summary.TotalOrdered, summary.TotalReceived)
	summary.GRNCount = len(grnNumbers)

	return &dto.GRNViewDTO{
		Meta: dto.ViewMeta{
			SnapshotID: snap.ID,
			LoadedAt:   snap.LoadedAt,
			RowCount:   len(rows),
		},
		Summary:    summary,
		Rows:       rows,
		POs:        collectSorted(pos),
		Vendors:    collectSorted(vendors),
		Warehouses: collectSorted(warehouses),
	}, nil
}

// POFulfillment agrega las líneas GRN por orden de compra: ordenado, recibido,
// pendiente, rechazado y % de cumplimiento. Solo líneas con PO real; se
// recalcula fresco en cada consulta. poNumber vacío devuelve todas las órdenes.
func (uc *GRNUseCase) POFulfillment(ctx context.Context, poNumber string) (*dto.POFulfillmentViewDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	wanted := planning.NormalizeKey(poNumber)

	type poAgg struct {
		po       string
		vendor   string
		lines    int
		ordered  decimal.Decimal
		received decimal.Decimal
		rejected decimal.Decimal
	}
	agg := make(map[string]*poAgg)
	for _, r := range snap.GRN.Rows {
		if !r.HasPO() {
			continue
		}
		key := planning.NormalizeKey(r.PONumber)
		if wanted != "" && key != wanted {
			continue
		}
		a, ok := agg[key]
		if !ok {
			a = &poAgg{po: strings.TrimSpace(r.PONumber), vendor: r.Vendor}
			agg[key] = a
		}
		a.lines++
		a.ordered = a.ordered.Add(r.QtyOrdered)
		a.received = a.received.Add(r.QtyReceived)
		a.rejected = a.rejected.Add(r.QtyRejected)
	}

	orders := make([]dto.POFulfillmentDTO, 0, len(agg))
	for _, a := range agg {
		orders = append(orders, dto.POFulfillmentDTO{
			PONumber:       a.po,
			Vendor:         a.vendor,
			Lines:          a.lines,
			QtyOrdered:     a.ordered,
			QtyReceived:    a.received,
			QtyPending:     planning.PendingQty(a.ordered, a.received),
			QtyRejected:    a.rejected,
			FulfillmentPct: planning.FulfillmentPercent(a.received, a.ordered),
		})
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].PONumber < orders[j].PONumber })

	return &dto.POFulfillmentViewDTO{
		Meta: dto.ViewMeta{
			SnapshotID: snap.ID,
			LoadedAt:   snap.LoadedAt,
			RowCount:   len(orders),
		},
		Orders: orders,
	}, nil
}

var grnExportHeaders = []string{
	"GRN Number", "GRN Date", "Vendor", "PO Number", "Item Code",
	"Qty Ordered", "Qty Received", "Qty Rejected", "Rejection %", "Value (No Tax)", "Warehouse",
}

// Export serializa la vista filtrada con las mismas columnas que se muestran.
func (uc *GRNUseCase) Export(ctx context.Context, f dto.GRNFilter) ([]byte, error) {
	view, err := uc.View(ctx, f)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(view.Rows))
	for _, r := range view.Rows {
		var date interface{}
		if r.GRNDate != nil {
			date = r.GRNDate.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			r.GRNNumber, date, r.Vendor, r.PONumber, r.ItemCode,
			r.QtyOrdered.InexactFloat64(), r.QtyReceived.InexactFloat64(),
			r.QtyRejected.InexactFloat64(), r.RejectionPct.InexactFloat64(),
			r.ValueNoTax.InexactFloat64(), r.Warehouse,
		})
	}
	return uc.exporter.WriteXLSX("GRN", grnExportHeaders, rows)
}
