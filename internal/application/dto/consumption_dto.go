package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumptionFilter parámetros de la vista de consumo.
// Month usa etiquetas "Jan-2006" derivadas de la fecha de lote.
type ConsumptionFilter struct {
	Search    string `query:"search"`
	Warehouse string `query:"warehouse"`
	Category  string `query:"category"`
	Month     string `query:"month"`
}

// ConsumptionRowDTO evento de consumo de un lote de producción.
type ConsumptionRowDTO struct {
	MaterialCode string          `json:"material_code"`
	MaterialName string          `json:"material_name"`
	ProductName  string          `json:"product_name"`
	BatchDate    *time.Time      `json:"batch_date,omitempty"`
	BatchQty     decimal.Decimal `json:"batch_qty"`
	ConsumedBOM  decimal.Decimal `json:"consumed_bom"`
	ProducedQty  decimal.Decimal `json:"produced_qty"`
	WastageQty   decimal.Decimal `json:"wastage_qty"`
	Warehouse    string          `json:"warehouse,omitempty"`
	Category     string          `json:"category,omitempty"`
}

// ConsumptionSummaryDTO KPIs sobre las filas filtradas.
type ConsumptionSummaryDTO struct {
	TotalConsumed   decimal.Decimal `json:"total_consumed"`
	TotalProduced   decimal.Decimal `json:"total_produced"`
	TotalBatchQty   decimal.Decimal `json:"total_batch_qty"`
	TotalWastage    decimal.Decimal `json:"total_wastage"`
	UniqueProducts  int             `json:"unique_products"`
	UniqueMaterials int             `json:"unique_materials"`
}

// ConsumptionViewDTO respuesta completa. Warehouses/Categories/Months
// alimentan los dropdowns; las dos primeras llegan vacías si la hoja no traía
// esas columnas.
type ConsumptionViewDTO struct {
	Meta       ViewMeta              `json:"meta"`
	Summary    ConsumptionSummaryDTO `json:"summary"`
	Rows       []ConsumptionRowDTO   `json:"rows"`
	Warehouses []string              `json:"warehouses"`
	Categories []string              `json:"categories"`
	Months     []string              `json:"months"`
}
