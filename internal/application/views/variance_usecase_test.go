package views_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/application/views"
	"github.com/sproutlife/inventory-insights/internal/domain/entity"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
)

func filaConsumo(code, name string, consumed float64, batch *time.Time) entity.ConsumptionRecord {
	return entity.ConsumptionRecord{
		MaterialCode: planning.NormalizeKey(code),
		MaterialName: name,
		ProductName:  "Granola Clásica",
		BatchDate:    batch,
		ConsumedBOM:  dec(consumed),
	}
}

// M1 consume 80 contra forecast 100 (sub-consumo, -20%); M2 consume 120 sin
// forecast (sobre-consumo, porcentaje indefinido). Filas ordenadas por código.
func TestVarianceView_JoinIzquierdoYClasificacion(t *testing.T) {
	snap := nuevoSnapshot()
	snap.Consumption.Rows = []entity.ConsumptionRecord{
		filaConsumo("M2", "Miel", 120, fecha(2025, time.November, 5)),
		filaConsumo("M1", "Avena", 30, fecha(2025, time.November, 3)),
		filaConsumo("M1", "Avena", 50, fecha(2025, time.November, 10)),
	}
	snap.Forecast.Rows = []entity.ForecastRecord{filaForecast("M1", 100)}

	uc := views.NewVarianceUseCase(stubProvider{snap: snap}, nil)
	view, err := uc.View(context.Background(), dto.VarianceFilter{})
	require.NoError(t, err)
	require.Len(t, view.Rows, 2)

	m1 := view.Rows[0]
	assert.Equal(t, "M1", m1.MaterialCode)
	assert.True(t, decimal.NewFromInt(80).Equal(m1.Actual))
	assert.Equal(t, "-20", m1.Variance.String())
	require.NotNil(t, m1.VariancePct)
	assert.Equal(t, "-20", m1.VariancePct.String())
	assert.Equal(t, string(planning.StatusUnderConsumed), m1.Status)

	m2 := view.Rows[1]
	assert.Equal(t, "M2", m2.MaterialCode)
	assert.Equal(t, "120", m2.Variance.String())
	assert.Nil(t, m2.VariancePct, "sin forecast el porcentaje queda indefinido")
	assert.Equal(t, string(planning.StatusOverConsumed), m2.Status)
}

func TestVarianceView_FiltroPorDireccion(t *testing.T) {
	snap := nuevoSnapshot()
	snap.Consumption.Rows = []entity.ConsumptionRecord{
		filaConsumo("SOBRE", "Azúcar", 150, nil),
		filaConsumo("BAJO", "Cacao", 40, nil),
	}
	snap.Forecast.Rows = []entity.ForecastRecord{
		filaForecast("SOBRE", 100),
		filaForecast("BAJO", 100),
	}

	uc := views.NewVarianceUseCase(stubProvider{snap: snap}, nil)

	over, err := uc.View(context.Background(), dto.VarianceFilter{Direction: "over"})
	require.NoError(t, err)
	require.Len(t, over.Rows, 1)
	assert.Equal(t, "SOBRE", over.Rows[0].MaterialCode)

	under, err := uc.View(context.Background(), dto.VarianceFilter{Direction: "under"})
	require.NoError(t, err)
	require.Len(t, under.Rows, 1)
	assert.Equal(t, "BAJO", under.Rows[0].MaterialCode)
}

// El filtro de mes restringe el consumo agregado; los KPIs se recalculan sobre
// lo filtrado y la lista de meses sale del dataset completo en orden cronológico.
func TestVarianceView_FiltroPorMes(t *testing.T) {
	snap := nuevoSnapshot()
	snap.Consumption.Rows = []entity.ConsumptionRecord{
		filaConsumo("M1", "Avena", 60, fecha(2025, time.October, 20)),
		filaConsumo("M1", "Avena", 25, fecha(2025, time.November, 2)),
	}
	snap.Forecast.Rows = []entity.ForecastRecord{filaForecast("M1", 50)}

	uc := views.NewVarianceUseCase(stubProvider{snap: snap}, nil)

	view, err := uc.View(context.Background(), dto.VarianceFilter{Month: "Nov-2025"})
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	assert.True(t, decimal.NewFromInt(25).Equal(view.Rows[0].Actual))
	assert.Equal(t, string(planning.StatusUnderConsumed), view.Rows[0].Status)
	assert.Equal(t, []string{"Oct-2025", "Nov-2025"}, view.Months)

	assert.True(t, decimal.NewFromInt(25).Equal(view.Summary.TotalActual))
	assert.True(t, decimal.NewFromInt(50).Equal(view.Summary.TotalForecast))
	assert.Equal(t, 1, view.Summary.UnderCount)
	assert.Equal(t, 0, view.Summary.OverCount)
}

func TestVarianceView_PorcentajeRedondeado(t *testing.T) {
	snap := nuevoSnapshot()
	snap.Consumption.Rows = []entity.ConsumptionRecord{filaConsumo("M1", "Avena", 400, nil)}
	snap.Forecast.Rows = []entity.ForecastRecord{filaForecast("M1", 300)}

	uc := views.NewVarianceUseCase(stubProvider{snap: snap}, nil)
	view, err := uc.View(context.Background(), dto.VarianceFilter{})
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	require.NotNil(t, view.Rows[0].VariancePct)
	assert.Equal(t, "33.3", view.Rows[0].VariancePct.String())
}

func TestVarianceExport_ColumnasVisibles(t *testing.T) {
	snap := nuevoSnapshot()
	snap.Consumption.Rows = []entity.ConsumptionRecord{filaConsumo("M1", "Avena", 80, nil)}
	snap.Forecast.Rows = []entity.ForecastRecord{filaForecast("M1", 100)}

	exp := &captureExporter{}
	uc := views.NewVarianceUseCase(stubProvider{snap: snap}, exp)

	out, err := uc.Export(context.Background(), dto.VarianceFilter{})
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), out)
	assert.Equal(t, "Consumption vs Forecast", exp.sheet)
	assert.Equal(t, []string{
		"Material Code", "Material Name", "Actual Consumption",
		"Forecast", "Variance", "Variance (%)", "Status",
	}, exp.headers)
	require.Len(t, exp.rows, 1)
	require.Len(t, exp.rows[0], len(exp.headers))
}
