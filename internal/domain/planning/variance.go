package planning

import "github.com/shopspring/decimal"

// VarianceStatus clasifica la desviación consumo vs forecast.
type VarianceStatus string

const (
	StatusOverConsumed  VarianceStatus = "over_consumed"
	StatusUnderConsumed VarianceStatus = "under_consumed"
	StatusOnTrack       VarianceStatus = "on_track"
)

// Variance es la desviación con signo: consumo real menos forecast.
func Variance(actual, forecast decimal.Decimal) decimal.Decimal {
	return actual.Sub(forecast)
}

// VariancePercent devuelve variance/forecast*100 redondeado a 1 decimal, solo
// cuando forecast > 0. Con forecast cero o negativo el porcentaje es nil
// (indefinido): no se calcula, no es 0 ni error. La clasificación sigue
// disponible vía ClassifyVariance aunque el porcentaje no exista.
func VariancePercent(variance, forecast decimal.Decimal) *decimal.Decimal {
	if forecast.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	pct := variance.Div(forecast).Mul(decimal.NewFromInt(100)).Round(1)
	return &pct
}

// ClassifyVariance: >0 sobre-consumido, <0 sub-consumido, ==0 en línea.
func ClassifyVariance(variance decimal.Decimal) VarianceStatus {
	switch {
	case variance.GreaterThan(decimal.Zero):
		return StatusOverConsumed
	case variance.LessThan(decimal.Zero):
		return StatusUnderConsumed
	default:
		return StatusOnTrack
	}
}
