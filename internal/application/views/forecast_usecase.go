package views

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
)

// ForecastUseCase es la vista de monitoreo: forecast por ítem con su
// stock-on-hand agregado, requerimiento diario y días de stock clasificados
// en bandas crítico / bajo / sano.
type ForecastUseCase struct {
	provider SnapshotProvider
	params   Params
}

// NewForecastUseCase construye el caso de uso.
func NewForecastUseCase(provider SnapshotProvider, params Params) *ForecastUseCase {
	return &ForecastUseCase{provider: provider, params: params}
}

// View devuelve las filas filtradas y los KPIs de la vista de forecast.
// Join izquierdo sobre el forecast: un ítem proyectado sin filas SOH entra con
// SOH 0 (sí hay demanda y no hay stock: el caso más urgente, no un hueco).
func (uc *ForecastUseCase) View(ctx context.Context, f dto.ForecastFilter) (*dto.ForecastViewDTO, error) {
	snap, err := uc.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	soh := aggregateOnHand(snap.RMInventory.Rows, uc.params.SOHLocations)

	summary := dto.ForecastSummaryDTO{
		TotalForecast:  decimal.Zero,
		TotalSOH:       decimal.Zero,
		TotalPerDayReq: decimal.Zero,
	}
	uniqueItems := make(map[string]struct{})

	rows := make([]dto.ForecastRowDTO, 0, len(snap.Forecast.Rows))
	for _, fc := range snap.Forecast.Rows {
		onHand := decimal.Zero
		if a, ok := soh[fc.ItemCode]; ok {
			onHand = a.OnHand
		}
		perDay := planning.PerDayRequirement(fc.Forecast, uc.params.CyclesPerYear)
		dos := planning.DaysOfStock(onHand, fc.Forecast, uc.params.CyclesPerYear)
		band := uc.params.Thresholds.Classify(dos)

		if !matchesSearch(f.Search, fc.ItemCode, fc.ProductName) {
			continue
		}
		if f.Band != "" && string(band) != f.Band {
			continue
		}

		rows = append(rows, dto.ForecastRowDTO{
			ItemCode:    fc.ItemCode,
			ProductName: fc.ProductName,
			Forecast:    fc.Forecast,
			Norm:        fc.Norm,
			SOH:         onHand,
			PerDayReq:   perDay,
			DaysOfStock: dos,
			Band:        string(band),
		})

		summary.TotalForecast = summary.TotalForecast.Add(fc.Forecast)
		summary.TotalSOH = summary.TotalSOH.Add(onHand)
		summary.TotalPerDayReq = summary.TotalPerDayReq.Add(perDay)
		if band == planning.BandCritical {
			summary.CriticalCount++
		}
		uniqueItems[fc.ItemCode] = struct{}{}
	}
	summary.UniqueItems = len(uniqueItems)

	return &dto.ForecastViewDTO{
		Meta: dto.ViewMeta{
			SnapshotID: snap.ID,
			LoadedAt:   snap.LoadedAt,
			RowCount:   len(rows),
		},
		Summary: summary,
		Rows:    rows,
	}, nil
}
