package views

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
)

// severeTierDays separa el resaltado "severo" del mero "advertencia" dentro de
// los ítems ya bajo el disparador. Corte presentacional, no de negocio.
const severeTierDays = 5

// ReplenishmentUseCase genera la lista de reposición: ítems con menos días de
// stock que el disparador, con la cantidad sugerida para alcanzar el horizonte
// objetivo. Join interno SOH x forecast: sin señal de demanda no hay pedido.
type ReplenishmentUseCase struct {
	provider SnapshotProvider
	params   Params
	exporter TabularExporter
	pdf      OrderListPDF
}

// NewReplenishmentUseCase construye el caso de uso.
func NewReplenishmentUseCase(provider SnapshotProvider, params Params, exporter TabularExporter, pdf OrderListPDF) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{provider: provider, params: params, exporter: exporter, pdf: pdf}
}

// Plan devuelve el plan de reposición ordenado por urgencia ascendente
// (menos días primero; stock cero o negativo arriba).
func (uc *ReplenishmentUseCase) Plan(ctx context.Context, f dto.ReplenishmentFilter) (*dto.ReplenishmentPlanDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	target := planning.ClampTargetDays(
		f.TargetDays, uc.params.TargetDaysMin, uc.params.TargetDaysMax, uc.params.TargetDaysDefault,
	)

	forecastByItem := make(map[string]decimal.Decimal, len(snap.Forecast.Rows))
	for _, fc := range snap.Forecast.Rows {
		forecastByItem[fc.ItemCode] = fc.Forecast
	}

	soh := aggregateOnHand(snap.RMInventory.Rows, uc.params.SOHLocations)

	rows := make([]dto.ReplenishmentRowDTO, 0)
	for _, a := range soh {
		forecast, ok := forecastByItem[a.ItemCode]
		if !ok {
			continue // join interno: solo ítems presentes en el forecast
		}

		dos := planning.DaysOfStock(a.OnHand, forecast, uc.params.CyclesPerYear)
		if !uc.params.Thresholds.NeedsReplenishment(dos) {
			continue
		}
		if !matchesSearch(f.Search, a.ItemCode, a.ItemName) {
			continue
		}

		perDay := planning.PerDayRequirement(forecast, uc.params.CyclesPerYear)
		rows = append(rows, dto.ReplenishmentRowDTO{
			ItemCode:     a.ItemCode,
			ItemName:     a.ItemName,
			Category:     a.Category,
			UoM:          a.UoM,
			SOH:          a.OnHand,
			Forecast:     forecast,
			PerDayReq:    perDay,
			DaysOfStock:  dos,
			SuggestedQty: planning.SuggestedOrderQty(a.OnHand, perDay, target),
			Tier:         tierFor(a.OnHand, dos),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].DaysOfStock, rows[j].DaysOfStock
		switch {
		case a == nil && b == nil:
			return rows[i].ItemCode < rows[j].ItemCode
		case a == nil:
			return true
		case b == nil:
			return false
		case !a.Equal(*b):
			return a.LessThan(*b)
		default:
			return rows[i].ItemCode < rows[j].ItemCode
		}
	})

	summary := dto.ReplenishmentSummaryDTO{
		CriticalItems:     len(rows),
		TotalSuggestedQty: decimal.Zero,
		TargetDays:        target,
	}
	for _, r := range rows {
		summary.TotalSuggestedQty = summary.TotalSuggestedQty.Add(r.SuggestedQty)
		if r.SOH.LessThanOrEqual(decimal.Zero) {
			summary.ZeroStockItems++
		}
	}
	if len(rows) > 0 {
		summary.MostUrgentDays = rows[0].DaysOfStock
	}

	return &dto.ReplenishmentPlanDTO{
		Meta: dto.ViewMeta{
			SnapshotID: snap.ID,
			LoadedAt:   snap.LoadedAt,
			RowCount:   len(rows),
		},
		Summary: summary,
		Rows:    rows,
	}, nil
}

var replenishmentExportHeaders = []string{
	"Item SKU", "Item Name", "Category", "UoM", "SOH",
	"Forecast", "Daily Req", "Days of Stock", "Suggested Order Qty",
}

// ExportXLSX serializa el plan con las mismas columnas y orden que se muestran.
func (uc *ReplenishmentUseCase) ExportXLSX(ctx context.Context, f dto.ReplenishmentFilter) ([]byte, error) {
	plan, err := uc.Plan(ctx, f)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(plan.Rows))
	for _, r := range plan.Rows {
		var days interface{}
		if r.DaysOfStock != nil {
			days = r.DaysOfStock.InexactFloat64()
		}
		rows = append(rows, []interface{}{
			r.ItemCode, r.ItemName, r.Category, r.UoM, r.SOH.InexactFloat64(),
			r.Forecast.InexactFloat64(), r.PerDayReq.InexactFloat64(), days,
			r.SuggestedQty.InexactFloat64(),
		})
	}
	return uc.exporter.WriteXLSX("Replenishment", replenishmentExportHeaders, rows)
}

// ExportPDF genera la lista de pedidos imprimible.
func (uc *ReplenishmentUseCase) ExportPDF(ctx context.Context, f dto.ReplenishmentFilter) ([]byte, error) {
	plan, err := uc.Plan(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateOrderList(ctx, plan)
}

func tierFor(onHand decimal.Decimal, dos *decimal.Decimal) string {
	if onHand.LessThanOrEqual(decimal.Zero) {
		return dto.TierZeroStock
	}
	if dos != nil && dos.LessThan(decimal.NewFromInt(severeTierDays)) {
		return dto.TierSevere
	}
	return dto.TierWarning
}
