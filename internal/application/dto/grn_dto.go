package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GRNFilter parámetros de la vista de recepciones.
type GRNFilter struct {
	Search    string `query:"search"`
	PONumber  string `query:"po_number"`
	Vendor    string `query:"vendor"`
	Warehouse string `query:"warehouse"`
}

// GRNRowDTO línea de recepción tal como se muestra.
type GRNRowDTO struct {
	GRNNumber    string          `json:"grn_number"`
	GRNDate      *time.Time      `json:"grn_date,omitempty"`
	Vendor       string          `json:"vendor"`
	PONumber     string          `json:"po_number,omitempty"`
	ItemCode     string          `json:"item_code"`
	QtyOrdered   decimal.Decimal `json:"qty_ordered"`
	QtyReceived  decimal.Decimal `json:"qty_received"`
	QtyRejected  decimal.Decimal `json:"qty_rejected"`
	RejectionPct decimal.Decimal `json:"rejection_pct"`
	ValueNoTax   decimal.Decimal `json:"value_no_tax"`
	ValueWithTax decimal.Decimal `json:"value_with_tax"`
	Warehouse    string          `json:"warehouse,omitempty"`
}

// GRNSummaryDTO KPIs sobre las líneas filtradas.
type GRNSummaryDTO struct {
	TotalOrdered  decimal.Decimal `json:"total_qty_ordered"`
	TotalReceived decimal.Decimal `json:"total_qty_received"`
	TotalPending  decimal.Decimal `json:"total_qty_pending"`
	TotalRejected decimal.Decimal `json:"total_qty_rejected"`
	GRNCount      int             `json:"grn_count"`
}

// GRNViewDTO respuesta completa de la vista de recepciones.
type GRNViewDTO struct {
	Meta       ViewMeta      `json:"meta"`
	Summary    GRNSummaryDTO `json:"summary"`
	Rows       []GRNRowDTO   `json:"rows"`
	POs        []string      `json:"pos"`
	Vendors    []string      `json:"vendors"`
	Warehouses []string      `json:"warehouses"`
}

// POFulfillmentDTO agregado de cumplimiento de una orden de compra. Se calcula
// fresco desde las líneas GRN cada vez que se consulta; solo participan líneas
// con número de PO real (no vacío ni placeholder).
type POFulfillmentDTO struct {
	PONumber       string          `json:"po_number"`
	Vendor         string          `json:"vendor"`
	Lines          int             `json:"lines"`
	QtyOrdered     decimal.Decimal `json:"qty_ordered"`
	QtyReceived    decimal.Decimal `json:"qty_received"`
	QtyPending     decimal.Decimal `json:"qty_pending"`
	QtyRejected    decimal.Decimal `json:"qty_rejected"`
	FulfillmentPct decimal.Decimal `json:"fulfillment_pct"`
}

// POFulfillmentViewDTO resumen por PO (todas, o una si se filtró).
type POFulfillmentViewDTO struct {
	Meta   ViewMeta           `json:"meta"`
	Orders []POFulfillmentDTO `json:"orders"`
}
