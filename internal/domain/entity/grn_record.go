package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GRNRecord es una línea de recepción de mercancía (Goods Receipt Note).
type GRNRecord struct {
	GRNNumber    string
	GRNDate      *time.Time
	Vendor       string
	PONumber     string // crudo, con trim; ver HasPO
	ItemCode     string // normalizado (trim + upper)
	QtyOrdered   decimal.Decimal
	QtyReceived  decimal.Decimal
	QtyRejected  decimal.Decimal
	RejectionPct decimal.Decimal
	ValueWithTax decimal.Decimal
	ValueNoTax   decimal.Decimal
	Warehouse    string
}

// HasPO indica si la línea tiene una orden de compra real. Los registros con
// número vacío o placeholder no participan de los resúmenes por PO.
func (r GRNRecord) HasPO() bool {
	switch strings.ToLower(strings.TrimSpace(r.PONumber)) {
	case "", "-", "--", "na", "n/a", "none", "nil":
		return false
	}
	return true
}
