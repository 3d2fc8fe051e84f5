package views_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/application/views"
	"github.com/sproutlife/inventory-insights/internal/domain/entity"
)

// Escenario de punta a punta: X100 con 50 en "Central" (bodega SOH) y 30 en
// "Line-A" (fuera de la lista SOH); forecast 260. El agregado debe ser 50
// (Line-A excluida), req diario 10, días de stock 5.0, banda crítica.
func TestForecastView_EscenarioX100(t *testing.T) {
	snap := nuevoSnapshot()
	snap.RMInventory.Rows = []entity.InventoryRecord{
		filaRM("X100", "Avena Base", "Central", 50),
		filaRM("X100", "Avena Base", "Line-A", 30),
	}
	snap.Forecast.Rows = append(snap.Forecast.Rows, filaForecast("X100", 260))

	uc := views.NewForecastUseCase(stubProvider{snap: snap}, paramsRef)
	view, err := uc.View(context.Background(), dto.ForecastFilter{})
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)

	row := view.Rows[0]
	assert.Equal(t, "X100", row.ItemCode)
	assert.True(t, decimal.NewFromInt(50).Equal(row.SOH), "Line-A no debe sumar: esperaba 50, obtuvo %s", row.SOH)
	assert.True(t, decimal.NewFromInt(10).Equal(row.PerDayReq))
	require.NotNil(t, row.DaysOfStock)
	assert.Equal(t, "5", row.DaysOfStock.String())
	assert.Equal(t, "critical", row.Band)
	assert.Equal(t, 1, view.Summary.CriticalCount)
}

// El orden de las filas de inventario no altera el agregado (suma conmutativa).
func TestForecastView_OrdenDeFilasNoImporta(t *testing.T) {
	filas := []entity.InventoryRecord{
		filaRM("X100", "Avena", "Central", 10),
		filaRM("X100", "Avena", "Tumkur Warehouse", 25),
		filaRM("X100", "Avena", "Central", 15),
	}

	directo := nuevoSnapshot()
	directo.RMInventory.Rows = filas
	directo.Forecast.Rows = []entity.ForecastRecord{filaForecast("X100", 260)}

	invertido := nuevoSnapshot()
	invertido.RMInventory.Rows = []entity.InventoryRecord{filas[2], filas[0], filas[1]}
	invertido.Forecast.Rows = []entity.ForecastRecord{filaForecast("X100", 260)}

	ucA := views.NewForecastUseCase(stubProvider{snap: directo}, paramsRef)
	ucB := views.NewForecastUseCase(stubProvider{snap: invertido}, paramsRef)

	vistaA, err := ucA.View(context.Background(), dto.ForecastFilter{})
	require.NoError(t, err)
	vistaB, err := ucB.View(context.Background(), dto.ForecastFilter{})
	require.NoError(t, err)

	require.Len(t, vistaA.Rows, 1)
	require.Len(t, vistaB.Rows, 1)
	assert.True(t, vistaA.Rows[0].SOH.Equal(vistaB.Rows[0].SOH))
	assert.True(t, decimal.NewFromInt(50).Equal(vistaA.Rows[0].SOH))
}

// Ítem en forecast sin ninguna fila SOH: join izquierdo rellena SOH=0 y los
// días de stock son 0 (hay demanda, no hay stock), banda crítica.
func TestForecastView_SinStockRellenaCero(t *testing.T) {
	snap := nuevoSnapshot()
	snap.Forecast.Rows = []entity.ForecastRecord{filaForecast("Y200", 52)}

	uc := views.NewForecastUseCase(stubProvider{snap: snap}, paramsRef)
	view, err := uc.View(context.Background(), dto.ForecastFilter{})
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)

	row := view.Rows[0]
	assert.True(t, row.SOH.IsZero())
	require.NotNil(t, row.DaysOfStock, "con forecast > 0 los días siempre están definidos")
	assert.True(t, row.DaysOfStock.IsZero())
	assert.Equal(t, "critical", row.Band)
}

func TestForecastView_FiltroPorBanda(t *testing.T) {
	snap := nuevoSnapshot()
	snap.RMInventory.Rows = []entity.InventoryRecord{
		filaRM("CRIT", "Crítico", "Central", 10),   // 10/(260/26)=1.0 días
		filaRM("SANO", "Sano", "Central", 500),     // 500/10=50 días
	}
	snap.Forecast.Rows = []entity.ForecastRecord{
		filaForecast("CRIT", 260),
		filaForecast("SANO", 260),
	}

	uc := views.NewForecastUseCase(stubProvider{snap: snap}, paramsRef)

	criticos, err := uc.View(context.Background(), dto.ForecastFilter{Band: "critical"})
	require.NoError(t, err)
	require.Len(t, criticos.Rows, 1)
	assert.Equal(t, "CRIT", criticos.Rows[0].ItemCode)

	sanos, err := uc.View(context.Background(), dto.ForecastFilter{Band: "healthy"})
	require.NoError(t, err)
	require.Len(t, sanos.Rows, 1)
	assert.Equal(t, "SANO", sanos.Rows[0].ItemCode)
}

func TestForecastView_KPIsSobreFilasFiltradas(t *testing.T) {
	snap := nuevoSnapshot()
	snap.RMInventory.Rows = []entity.InventoryRecord{
		filaRM("A1", "Uno", "Central", 100),
		filaRM("B2", "Dos", "Central", 200),
	}
	snap.Forecast.Rows = []entity.ForecastRecord{
		filaForecast("A1", 260),
		filaForecast("B2", 520),
	}

	uc := views.NewForecastUseCase(stubProvider{snap: snap}, paramsRef)
	view, err := uc.View(context.Background(), dto.ForecastFilter{})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(780).Equal(view.Summary.TotalForecast))
	assert.True(t, decimal.NewFromInt(300).Equal(view.Summary.TotalSOH))
	assert.True(t, decimal.NewFromInt(30).Equal(view.Summary.TotalPerDayReq))
	assert.Equal(t, 2, view.Summary.UniqueItems)
	assert.Equal(t, "snap-test", view.Meta.SnapshotID)
}
