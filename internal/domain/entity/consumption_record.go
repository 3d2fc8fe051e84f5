package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumptionRecord es un evento de consumo de material en un lote de producción.
type ConsumptionRecord struct {
	MaterialCode string // normalizado (trim + upper)
	MaterialName string
	ProductName  string
	BatchDate    *time.Time
	BatchQty     decimal.Decimal
	ConsumedBOM  decimal.Decimal // consumido según BOM; 0 si la celda no parsea
	ProducedQty  decimal.Decimal
	WastageQty   decimal.Decimal
	Warehouse    string // opcional
	Category     string // opcional
}
