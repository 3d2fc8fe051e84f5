package dto

import "github.com/shopspring/decimal"

// ReplenishmentFilter parámetros del planificador de reposición.
// TargetDays fuera de rango se acota; cero usa el valor por defecto.
type ReplenishmentFilter struct {
	Search     string `query:"search"`
	TargetDays int    `query:"target_days"`
}

// Niveles de urgencia para el resaltado en la presentación. zero_stock es un
// nivel aparte de los ítems meramente bajo el umbral.
const (
	TierZeroStock = "zero_stock"
	TierSevere    = "severe"
	TierWarning   = "warning"
)

// ReplenishmentRowDTO ítem bajo el disparador de reposición con su pedido sugerido.
type ReplenishmentRowDTO struct {
	ItemCode     string           `json:"item_code"`
	ItemName     string           `json:"item_name"`
	Category     string           `json:"category,omitempty"`
	UoM          string           `json:"uom"`
	SOH          decimal.Decimal  `json:"soh"`
	Forecast     decimal.Decimal  `json:"forecast"`
	PerDayReq    decimal.Decimal  `json:"per_day_req"`
	DaysOfStock  *decimal.Decimal `json:"days_of_stock"`
	SuggestedQty decimal.Decimal  `json:"suggested_order_qty"`
	Tier         string           `json:"tier"`
}

// ReplenishmentSummaryDTO KPIs del plan.
type ReplenishmentSummaryDTO struct {
	CriticalItems     int              `json:"critical_items"`
	ZeroStockItems    int              `json:"zero_stock_items"`
	TotalSuggestedQty decimal.Decimal  `json:"total_suggested_qty"`
	MostUrgentDays    *decimal.Decimal `json:"most_urgent_days"`
	TargetDays        int              `json:"target_days"`
}

// ReplenishmentPlanDTO plan completo, ordenado por urgencia ascendente
// (menos días de stock primero; stock cero o negativo arriba).
type ReplenishmentPlanDTO struct {
	Meta    ViewMeta                `json:"meta"`
	Summary ReplenishmentSummaryDTO `json:"summary"`
	Rows    []ReplenishmentRowDTO   `json:"rows"`
}
