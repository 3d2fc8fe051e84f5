package dto

import "github.com/shopspring/decimal"

// VarianceFilter parámetros de la vista consumo vs forecast.
// Direction: "", "over" o "under".
type VarianceFilter struct {
	Search    string `query:"search"`
	Month     string `query:"month"`
	Direction string `query:"direction"`
}

// VarianceRowDTO comparación por material: consumo real agregado del período
// contra el forecast del ciclo. VariancePct es null cuando el forecast es 0
// (indefinido, no cero).
type VarianceRowDTO struct {
	MaterialCode string           `json:"material_code"`
	MaterialName string           `json:"material_name"`
	Actual       decimal.Decimal  `json:"actual_consumption"`
	Forecast     decimal.Decimal  `json:"forecast"`
	Variance     decimal.Decimal  `json:"variance"`
	VariancePct  *decimal.Decimal `json:"variance_pct"`
	Status       string           `json:"status"`
}

// VarianceSummaryDTO KPIs sobre los materiales mostrados.
type VarianceSummaryDTO struct {
	TotalActual   decimal.Decimal `json:"total_actual"`
	TotalForecast decimal.Decimal `json:"total_forecast"`
	TotalVariance decimal.Decimal `json:"total_variance"`
	OverCount     int             `json:"over_count"`
	UnderCount    int             `json:"under_count"`
	Materials     int             `json:"materials"`
}

// VarianceViewDTO respuesta completa.
type VarianceViewDTO struct {
	Meta    ViewMeta           `json:"meta"`
	Summary VarianceSummaryDTO `json:"summary"`
	Rows    []VarianceRowDTO   `json:"rows"`
	Months  []string           `json:"months"`
}
