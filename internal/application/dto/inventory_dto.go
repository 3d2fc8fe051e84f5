package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryFilter parámetros normalizados de las vistas RM/FG Inventory.
// Valores vacíos significan "sin filtro".
type InventoryFilter struct {
	Search   string `query:"search"`
	Location string `query:"location"`
	Category string `query:"category"`
}

// InventoryRowDTO fila de inventario tal como se muestra.
type InventoryRowDTO struct {
	ItemCode     string          `json:"item_code"`
	ItemName     string          `json:"item_name"`
	Location     string          `json:"location"`
	Category     string          `json:"category,omitempty"`
	UoM          string          `json:"uom"`
	QtyAvailable decimal.Decimal `json:"qty_available"`
	QtyInward    decimal.Decimal `json:"qty_inward"`
	QtyOnHold    decimal.Decimal `json:"qty_on_hold"`
	ValueNoTax   decimal.Decimal `json:"value_no_tax"`
	ValueWithTax decimal.Decimal `json:"value_with_tax"`
	BatchNumber  string          `json:"batch_number,omitempty"`
	MfgDate      *time.Time      `json:"mfg_date,omitempty"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
}

// InventorySummaryDTO KPIs de la vista de inventario sobre las filas filtradas.
type InventorySummaryDTO struct {
	TotalQtyAvailable decimal.Decimal `json:"total_qty_available"`
	TotalQtyInward    decimal.Decimal `json:"total_qty_inward"`
	TotalQtyOnHold    decimal.Decimal `json:"total_qty_on_hold"`
	TotalValueNoTax   decimal.Decimal `json:"total_value_no_tax"`
	UniqueItems       int             `json:"unique_items"`
}

// InventoryViewDTO respuesta completa de la vista.
// Locations y Categories alimentan los dropdowns del colaborador de
// presentación; Categories llega vacío con HasCategories=false cuando la hoja
// no traía la columna (degradación por columna ausente).
type InventoryViewDTO struct {
	Meta          ViewMeta            `json:"meta"`
	Summary       InventorySummaryDTO `json:"summary"`
	Rows          []InventoryRowDTO   `json:"rows"`
	Locations     []string            `json:"locations"`
	Categories    []string            `json:"categories"`
	HasCategories bool                `json:"has_categories"`
}
