package views_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sproutlife/inventory-insights/internal/application/views"
	"github.com/sproutlife/inventory-insights/internal/domain/entity"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
)

// stubProvider entrega un snapshot fijo en memoria (sin libro de datos).
type stubProvider struct {
	snap *entity.Snapshot
}

func (s stubProvider) Snapshot(_ context.Context) (*entity.Snapshot, error) { return s.snap, nil }
func (s stubProvider) Refresh(_ context.Context) (*entity.Snapshot, error)  { return s.snap, nil }

// captureExporter retiene la última tabla exportada para inspeccionarla.
type captureExporter struct {
	sheet   string
	headers []string
	rows    [][]interface{}
}

func (c *captureExporter) WriteXLSX(sheet string, headers []string, rows [][]interface{}) ([]byte, error) {
	c.sheet = sheet
	c.headers = headers
	c.rows = rows
	return []byte("xlsx"), nil
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func fecha(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// paramsRef espejo de la configuración de referencia del despliegue.
var paramsRef = views.Params{
	CyclesPerYear: 26,
	Thresholds: planning.Thresholds{
		CriticalDays:             7,
		LowDays:                  14,
		ReplenishmentTriggerDays: 10,
	},
	SOHLocations:      []string{"Central", "Tumkur Warehouse"},
	TargetDaysMin:     10,
	TargetDaysMax:     90,
	TargetDaysDefault: 30,
}

func nuevoSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		ID:       "snap-test",
		LoadedAt: time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC),
	}
}

func filaRM(code, name, location string, qty float64) entity.InventoryRecord {
	return entity.InventoryRecord{
		ItemCode:     planning.NormalizeKey(code),
		ItemName:     name,
		Location:     location,
		UoM:          "KG",
		QtyAvailable: dec(qty),
	}
}

func filaForecast(code string, forecast float64) entity.ForecastRecord {
	return entity.ForecastRecord{
		ItemCode: planning.NormalizeKey(code),
		Forecast: dec(forecast),
	}
}
