package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord es una fila del inventario (RM o FG): un lote de un ítem en
// una ubicación. Snapshot de solo lectura; nunca se muta, solo se filtra y deriva.
type InventoryRecord struct {
	ItemCode     string // clave de join, ya normalizada (trim + upper)
	ItemName     string
	Location     string // ubicación tal como viene, con trim
	Category     string // opcional; vacío si la hoja no trae la columna
	UoM          string
	QtyAvailable decimal.Decimal // puede ser cero o negativa (stock retenido/emitido)
	QtyInward    decimal.Decimal
	QtyOnHold    decimal.Decimal
	ValueWithTax decimal.Decimal
	ValueNoTax   decimal.Decimal
	BatchNumber  string
	MfgDate      *time.Time // nil si la celda no parsea
	ExpiryDate   *time.Time
	LastCounted  *time.Time
}
