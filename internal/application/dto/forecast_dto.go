package dto

import "github.com/shopspring/decimal"

// ForecastFilter parámetros de la vista de forecast.
// Band: "", "critical", "low" o "healthy".
type ForecastFilter struct {
	Search string `query:"search"`
	Band   string `query:"band"`
}

// ForecastRowDTO forecast de un ítem con su stock-on-hand agregado y los
// días de stock derivados. DaysOfStock es null cuando no hay forecast (>0);
// ese caso no aparece en esta vista pero el contrato lo preserva.
type ForecastRowDTO struct {
	ItemCode    string           `json:"item_code"`
	ProductName string           `json:"product_name,omitempty"`
	Forecast    decimal.Decimal  `json:"forecast"`
	Norm        decimal.Decimal  `json:"norm"`
	SOH         decimal.Decimal  `json:"soh"`
	PerDayReq   decimal.Decimal  `json:"per_day_req"`
	DaysOfStock *decimal.Decimal `json:"days_of_stock"`
	Band        string           `json:"band"`
}

// ForecastSummaryDTO KPIs sobre las filas filtradas.
type ForecastSummaryDTO struct {
	TotalForecast  decimal.Decimal `json:"total_forecast"`
	TotalSOH       decimal.Decimal `json:"total_soh"`
	TotalPerDayReq decimal.Decimal `json:"total_per_day_req"`
	CriticalCount  int             `json:"critical_count"`
	UniqueItems    int             `json:"unique_items"`
}

// ForecastViewDTO respuesta completa de la vista de forecast.
type ForecastViewDTO struct {
	Meta    ViewMeta           `json:"meta"`
	Summary ForecastSummaryDTO `json:"summary"`
	Rows    []ForecastRowDTO   `json:"rows"`
}
