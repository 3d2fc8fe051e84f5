package workbook

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sproutlife/inventory-insights/internal/domain"
)

// column describe una columna lógica de una hoja: los encabezados exactos con
// los que puede aparecer y, como respaldo, palabras clave que todas deben
// estar contenidas en el encabezado. key marca las columnas sin las cuales la
// hoja no sirve; las demás degradan (la vista pierde ese filtro o métrica).
type column struct {
	logical  string
	aliases  []string
	keywords []string
	key      bool
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader lleva un encabezado a forma canónica: sin tildes, en
// minúsculas, con espacios internos colapsados. Las hojas llegan de exportes
// manuales y los encabezados varían entre cargas.
func normalizeHeader(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// resolveColumns ubica cada columna lógica en la fila de encabezados.
// Devuelve el índice por nombre lógico y la lista de columnas opcionales
// ausentes. Una columna clave ausente es ErrMissingColumn.
func resolveColumns(sheet string, headers []string, cols []column) (map[string]int, []string, error) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	index := make(map[string]int, len(cols))
	var absent []string

	for _, c := range cols {
		idx := findColumn(normalized, c)
		if idx >= 0 {
			index[c.logical] = idx
			continue
		}
		if c.key {
			return nil, nil, fmt.Errorf("%w: hoja %q, columna %q", domain.ErrMissingColumn, sheet, c.logical)
		}
		absent = append(absent, c.logical)
	}
	return index, absent, nil
}

func findColumn(normalized []string, c column) int {
	for _, alias := range c.aliases {
		want := normalizeHeader(alias)
		for i, h := range normalized {
			if h == want {
				return i
			}
		}
	}
	if len(c.keywords) == 0 {
		return -1
	}
	for i, h := range normalized {
		if h == "" {
			continue
		}
		all := true
		for _, kw := range c.keywords {
			if !strings.Contains(h, kw) {
				all = false
				break
			}
		}
		if all {
			return i
		}
	}
	return -1
}

// Mapas de columnas por hoja. Los alias reproducen los encabezados reales de
// los exportes del ERP; las palabras clave absorben variaciones menores.
var inventoryColumns = []column{
	{logical: "item_code", aliases: []string{"Item SKU", "Item Code", "SKU"}, keywords: []string{"item", "sku"}, key: true},
	{logical: "item_name", aliases: []string{"Item Name", "Item Description"}, keywords: []string{"item", "name"}},
	{logical: "warehouse", aliases: []string{"Warehouse", "wh", "Location"}, key: true},
	{logical: "category", aliases: []string{"Category", "Category Name"}},
	{logical: "uom", aliases: []string{"UoM", "Unit", "UOM Name"}},
	{logical: "qty_available", aliases: []string{"Qty Available", "Available Qty"}, keywords: []string{"qty", "available"}, key: true},
	{logical: "qty_inward", aliases: []string{"Qty Inward", "Inward Qty"}, keywords: []string{"qty", "inward"}},
	{logical: "qty_on_hold", aliases: []string{"Qty On Hold", "On Hold Qty"}, keywords: []string{"qty", "hold"}},
	{logical: "value_with_tax", aliases: []string{"Value (With Tax)", "Value With Tax"}, keywords: []string{"value", "with tax"}},
	{logical: "value_no_tax", aliases: []string{"Value (No Tax)", "Value Without Tax"}, keywords: []string{"value", "no tax"}},
	{logical: "batch_number", aliases: []string{"Batch Number", "Batch No"}, keywords: []string{"batch", "numb"}},
	{logical: "mfg_date", aliases: []string{"Mfg Date", "Manufacturing Date"}, keywords: []string{"mfg"}},
	{logical: "expiry_date", aliases: []string{"Expiry Date", "Exp Date"}, keywords: []string{"exp"}},
	{logical: "last_counted", aliases: []string{"Last Counted", "Last Count Date"}, keywords: []string{"last", "count"}},
}

var forecastColumns = []column{
	{logical: "item_code", aliases: []string{"Item code", "Item Code", "Item SKU"}, keywords: []string{"item"}, key: true},
	{logical: "product_name", aliases: []string{"Product Name", "Item Name"}, keywords: []string{"name"}},
	{logical: "location", aliases: []string{"Location", "Plant"}},
	{logical: "forecast", aliases: []string{"Forecast"}, key: true},
	{logical: "norm", aliases: []string{"Norm"}},
	{logical: "per_day_req", aliases: []string{"Per day Req", "Per Day Req"}, keywords: []string{"per", "day"}},
}

var consumptionColumns = []column{
	{logical: "material_code", aliases: []string{"Material Code", "Material SKU"}, keywords: []string{"material", "code"}, key: true},
	{logical: "material_name", aliases: []string{"Material Name"}, keywords: []string{"material", "name"}},
	{logical: "product_name", aliases: []string{"Product Name"}, keywords: []string{"product", "name"}},
	{logical: "batch_date", aliases: []string{"Batch Date"}, keywords: []string{"batch", "date"}},
	{logical: "batch_qty", aliases: []string{"Batch Qty"}, keywords: []string{"batch", "qty"}},
	{logical: "consumed_bom", aliases: []string{"Consumed (As per BOM)", "Consumed"}, keywords: []string{"consumed"}, key: true},
	{logical: "produced_qty", aliases: []string{"Total Produced Qty", "Produced Qty"}, keywords: []string{"produced"}},
	{logical: "wastage_qty", aliases: []string{"Damage/Wastage", "Wastage"}, keywords: []string{"wastage"}},
	{logical: "warehouse", aliases: []string{"Warehouse", "wh"}},
	{logical: "category", aliases: []string{"Category Name", "Category"}},
}

var grnColumns = []column{
	{logical: "grn_number", aliases: []string{"GRN Number", "GRN No"}, keywords: []string{"grn", "numb"}, key: true},
	{logical: "grn_date", aliases: []string{"GRN Date"}, keywords: []string{"grn", "date"}},
	{logical: "vendor", aliases: []string{"Vendor", "Vendor Name", "Supplier"}},
	{logical: "po_number", aliases: []string{"PO Number", "PO No"}, keywords: []string{"po"}},
	{logical: "item_code", aliases: []string{"Item SKU", "Item Code"}, keywords: []string{"item"}},
	{logical: "qty_ordered", aliases: []string{"Qty Ordered", "Ordered Qty"}, keywords: []string{"ordered"}, key: true},
	{logical: "qty_received", aliases: []string{"Qty Received", "Received Qty"}, keywords: []string{"received"}, key: true},
	{logical: "qty_rejected", aliases: []string{"Qty Rejected", "Rejected Qty"}, keywords: []string{"rejected"}},
	{logical: "rejection_pct", aliases: []string{"Rejection %", "Rejection Percent"}, keywords: []string{"rejection"}},
	{logical: "value_with_tax", aliases: []string{"Value (With Tax)", "Value With Tax"}, keywords: []string{"value", "with tax"}},
	{logical: "value_no_tax", aliases: []string{"Value (No Tax)", "Value Without Tax"}, keywords: []string{"value", "no tax"}},
	{logical: "warehouse", aliases: []string{"Warehouse", "wh"}},
}
