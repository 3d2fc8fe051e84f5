package planning

import "github.com/shopspring/decimal"

// PlanningCyclesPerYear es la convención del negocio: el forecast de la hoja
// cubre un ciclo y el año tiene 26 ciclos, así que forecast/26 es el
// requerimiento diario. No generaliza a otros horizontes sin configuración
// explícita; los despliegues lo ajustan vía PLANNING_CYCLES_PER_YEAR.
const PlanningCyclesPerYear int64 = 26

// PerDayRequirement deriva el requerimiento diario de un forecast de ciclo.
func PerDayRequirement(forecast decimal.Decimal, cyclesPerYear int64) decimal.Decimal {
	if cyclesPerYear <= 0 {
		return decimal.Zero
	}
	return forecast.Div(decimal.NewFromInt(cyclesPerYear))
}

// DaysOfStock deriva los días de stock restantes: onHand / (forecast/ciclos),
// redondeado a 1 decimal. Con forecast <= 0 el resultado es nil (indefinido):
// "sin señal de demanda" se distingue de "cero stock", nunca es 0 ni infinito.
func DaysOfStock(onHand, forecast decimal.Decimal, cyclesPerYear int64) *decimal.Decimal {
	if forecast.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	perDay := PerDayRequirement(forecast, cyclesPerYear)
	if perDay.IsZero() {
		return nil
	}
	d := onHand.Div(perDay).Round(1)
	return &d
}

// StockBand clasifica un ítem según sus días de stock.
type StockBand string

const (
	BandCritical StockBand = "critical"
	BandLow      StockBand = "low"
	BandHealthy  StockBand = "healthy"
	// BandUnknown: días de stock indefinidos (sin forecast).
	BandUnknown StockBand = "unknown"
)

// Thresholds son los cortes de días de stock. La vista de monitoreo usa
// CriticalDays/LowDays (7/14 de referencia); el planificador de reposición usa
// su propio disparador ReplenishmentTriggerDays (10). Ambos son configuración
// inyectada, no literales: los dos cortes difieren por diseño.
type Thresholds struct {
	CriticalDays             int
	LowDays                  int
	ReplenishmentTriggerDays int
}

// Classify asigna la banda de monitoreo: < CriticalDays crítica,
// [CriticalDays, LowDays] baja (bordes inclusivos), > LowDays sana.
func (t Thresholds) Classify(dos *decimal.Decimal) StockBand {
	if dos == nil {
		return BandUnknown
	}
	switch {
	case dos.LessThan(decimal.NewFromInt(int64(t.CriticalDays))):
		return BandCritical
	case dos.LessThanOrEqual(decimal.NewFromInt(int64(t.LowDays))):
		return BandLow
	default:
		return BandHealthy
	}
}

// NeedsReplenishment indica si el ítem cae bajo el disparador de reposición.
// Días indefinidos (sin forecast) no disparan: sin demanda no hay pedido.
func (t Thresholds) NeedsReplenishment(dos *decimal.Decimal) bool {
	if dos == nil {
		return false
	}
	return dos.LessThan(decimal.NewFromInt(int64(t.ReplenishmentTriggerDays)))
}
