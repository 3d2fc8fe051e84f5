package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sproutlife/inventory-insights/internal/domain/planning"
)

var umbralesRef = planning.Thresholds{
	CriticalDays:             7,
	LowDays:                  14,
	ReplenishmentTriggerDays: 10,
}

func TestPerDayRequirement_Convencion26Ciclos(t *testing.T) {
	// Forecast 260 a 26 ciclos/año => 10 por día.
	req := planning.PerDayRequirement(decimal.NewFromInt(260), planning.PlanningCyclesPerYear)
	assert.True(t, decimal.NewFromInt(10).Equal(req), "260/26 debe ser 10, obtuvo %s", req)
}

func TestPerDayRequirement_CiclosInvalidos(t *testing.T) {
	assert.True(t, planning.PerDayRequirement(decimal.NewFromInt(260), 0).IsZero())
	assert.True(t, planning.PerDayRequirement(decimal.NewFromInt(260), -5).IsZero())
}

func TestDaysOfStock_CasoBase(t *testing.T) {
	// SOH 50, forecast 260 => req diario 10 => 5.0 días.
	dos := planning.DaysOfStock(decimal.NewFromInt(50), decimal.NewFromInt(260), 26)
	require.NotNil(t, dos)
	assert.True(t, decimal.NewFromFloat(5.0).Equal(*dos), "esperaba 5.0, obtuvo %s", dos)
}

func TestDaysOfStock_RedondeoUnDecimal(t *testing.T) {
	// SOH 100, forecast 78 => req diario 3 => 33.333... => 33.3
	dos := planning.DaysOfStock(decimal.NewFromInt(100), decimal.NewFromInt(78), 26)
	require.NotNil(t, dos)
	assert.Equal(t, "33.3", dos.String())
}

// Con forecast 0 los días de stock son indefinidos (nil): nunca 0, nunca
// infinito, nunca panic. "Sin señal de demanda" != "cero stock".
func TestDaysOfStock_ForecastCeroEsNil(t *testing.T) {
	assert.Nil(t, planning.DaysOfStock(decimal.NewFromInt(50), decimal.Zero, 26))
	assert.Nil(t, planning.DaysOfStock(decimal.Zero, decimal.Zero, 26))
	assert.Nil(t, planning.DaysOfStock(decimal.NewFromInt(50), decimal.NewFromInt(-10), 26))
}

func TestDaysOfStock_StockNegativo(t *testing.T) {
	// Stock negativo (retenido/emitido) produce días negativos, no error.
	dos := planning.DaysOfStock(decimal.NewFromInt(-20), decimal.NewFromInt(260), 26)
	require.NotNil(t, dos)
	assert.True(t, dos.IsNegative())
}

func TestClassify_Bandas(t *testing.T) {
	casos := []struct {
		dias  float64
		banda planning.StockBand
	}{
		{0, planning.BandCritical},
		{6.9, planning.BandCritical},
		{7, planning.BandLow},   // borde inferior inclusivo
		{14, planning.BandLow},  // borde superior inclusivo
		{14.1, planning.BandHealthy},
		{40, planning.BandHealthy},
	}
	for _, c := range casos {
		d := decimal.NewFromFloat(c.dias)
		assert.Equal(t, c.banda, umbralesRef.Classify(&d), "días=%v", c.dias)
	}
}

func TestClassify_NilEsUnknown(t *testing.T) {
	assert.Equal(t, planning.BandUnknown, umbralesRef.Classify(nil))
}

func TestNeedsReplenishment_Disparador10(t *testing.T) {
	bajo := decimal.NewFromFloat(9.9)
	enElCorte := decimal.NewFromInt(10)
	sano := decimal.NewFromInt(25)

	assert.True(t, umbralesRef.NeedsReplenishment(&bajo))
	assert.False(t, umbralesRef.NeedsReplenishment(&enElCorte), "el corte es estricto: < 10")
	assert.False(t, umbralesRef.NeedsReplenishment(&sano))
	assert.False(t, umbralesRef.NeedsReplenishment(nil), "sin demanda no hay pedido")
}
