package views

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
)

// VarianceUseCase compara el consumo real por material contra el forecast del
// ciclo y clasifica sobre/sub-consumo. El consumo del período filtrado se
// agrega por clave de material y se une por izquierda al forecast (sin
// forecast → 0, porcentaje indefinido).
type VarianceUseCase struct {
	provider SnapshotProvider
	exporter TabularExporter
}

// NewVarianceUseCase construye el caso de uso.
func NewVarianceUseCase(provider SnapshotProvider, exporter TabularExporter) *VarianceUseCase {
	return &VarianceUseCase{provider: provider, exporter: exporter}
}

// View devuelve la comparación material a material y sus KPIs.
func (uc *VarianceUseCase) View(ctx context.Context, f dto.VarianceFilter) (*dto.VarianceViewDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	months := make(map[string]struct{})
	for _, r := range snap.Consumption.Rows {
		if m := monthLabel(r.BatchDate); m != "" {
			months[m] = struct{}{}
		}
	}

	// Agregación del consumo filtrado por clave normalizada de material.
	type conAgg struct {
		name   string
		actual decimal.Decimal
	}
	agg := make(map[string]*conAgg)
	order := make([]string, 0)
	for _, r := range snap.Consumption.Rows {
		if r.MaterialCode == "" {
			continue
		}
		if !matchesSearch(f.Search, r.MaterialCode, r.MaterialName, r.ProductName) {
			continue
		}
		if f.Month != "" && monthLabel(r.BatchDate) != f.Month {
			continue
		}
		a, ok := agg[r.MaterialCode]
		if !ok {
			a = &conAgg{name: r.MaterialName}
			agg[r.MaterialCode] = a
			order = append(order, r.MaterialCode)
		}
		a.actual = a.actual.Add(r.ConsumedBOM)
	}

	forecastByItem := make(map[string]decimal.Decimal, len(snap.Forecast.Rows))
	for _, fc := range snap.Forecast.Rows {
		forecastByItem[fc.ItemCode] = fc.Forecast
	}

	sort.Strings(order)

	summary := dto.VarianceSummaryDTO{
		TotalActual:   decimal.Zero,
		TotalForecast: decimal.Zero,
		TotalVariance: decimal.Zero,
	}
	rows := make([]dto.VarianceRowDTO, 0, len(order))
	for _, code := range order {
		a := agg[code]
		forecast := forecastByItem[code] // ausente → cero (join izquierdo)

		variance := planning.Variance(a.actual, forecast)
		status := planning.ClassifyVariance(variance)

		switch f.Direction {
		case "over":
			if status != planning.StatusOverConsumed {
				continue
			}
		case "under":
			if status != planning.StatusUnderConsumed {
				continue
			}
		}

		rows = append(rows, dto.VarianceRowDTO{
			MaterialCode: code,
			MaterialName: a.name,
			Actual:       a.actual,
			Forecast:     forecast,
			Variance:     variance,
			VariancePct:  planning.VariancePercent(variance, forecast),
			Status:       string(status),
		})

		summary.TotalActual = summary.TotalActual.Add(a.actual)
		summary.TotalForecast = summary.TotalForecast.Add(forecast)
		summary.TotalVariance = summary.TotalVariance.Add(variance)
		switch status {
		case planning.StatusOverConsumed:
			summary.OverCount++
		case planning.StatusUnderConsumed:
			summary.UnderCount++
		}
	}
	summary.Materials = len(rows)

	return &dto.VarianceViewDTO{
		Meta: dto.ViewMeta{
			SnapshotID: snap.ID,
			LoadedAt:   snap.LoadedAt,
			RowCount:   len(rows),
		},
		Summary: summary,
		Rows:    rows,
		Months:  sortedMonths(months),
	}, nil
}

var varianceExportHeaders = []string{
	"Material Code", "Material Name", "Actual Consumption",
	"Forecast", "Variance", "Variance (%)", "Status",
}

// Export serializa la comparación con las mismas columnas que se muestran.
func (uc *VarianceUseCase) Export(ctx context.Context, f dto.VarianceFilter) ([]byte, error) {
	view, err := uc.View(ctx, f)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(view.Rows))
	for _, r := range view.Rows {
		var pct interface{}
		if r.VariancePct != nil {
			pct = r.VariancePct.InexactFloat64()
		}
		rows = append(rows, []interface{}{
			r.MaterialCode, r.MaterialName, r.Actual.InexactFloat64(),
			r.Forecast.InexactFloat64(), r.Variance.InexactFloat64(), pct, r.Status,
		})
	}
	return uc.exporter.WriteXLSX("Consumption vs Forecast", varianceExportHeaders, rows)
}
