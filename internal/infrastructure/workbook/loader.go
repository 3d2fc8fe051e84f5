package workbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sproutlife/inventory-insights/internal/domain"
	"github.com/sproutlife/inventory-insights/internal/domain/entity"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
	"github.com/sproutlife/inventory-insights/pkg/config"
	"github.com/sproutlife/inventory-insights/pkg/logger"
)

// Loader abre el libro de datos y lo convierte en un Snapshot del dominio.
// Cada hoja se lee completa con sus encabezados en la primera fila; las
// celdas sucias degradan a cero/nil en vez de descartar la fila.
type Loader struct {
	source   config.SourceConfig
	planning config.PlanningConfig
	log      *logger.Logger
}

// NewLoader construye el loader.
func NewLoader(source config.SourceConfig, planning config.PlanningConfig, log *logger.Logger) *Loader {
	return &Loader{source: source, planning: planning, log: log}
}

// Load lee las cinco hojas y arma el snapshot. El libro se abre y cierra en
// cada carga: el archivo puede ser reemplazado entre refrescos.
func (l *Loader) Load(ctx context.Context) (*entity.Snapshot, error) {
	f, err := excelize.OpenFile(l.source.WorkbookPath)
	if err != nil {
		l.log.Error().Err(err).Str("path", l.source.WorkbookPath).Msg("No se pudo abrir el libro de datos")
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, l.source.WorkbookPath)
	}
	defer f.Close()

	snap := &entity.Snapshot{}

	if snap.RMInventory, err = l.loadInventory(f, l.source.RMSheet, l.planning.ValidLocations); err != nil {
		return nil, err
	}
	// FG no tiene allow-list de ubicaciones.
	if snap.FGInventory, err = l.loadInventory(f, l.source.FGSheet, nil); err != nil {
		return nil, err
	}
	if snap.Forecast, err = l.loadForecast(f); err != nil {
		return nil, err
	}
	if snap.Consumption, err = l.loadConsumption(f); err != nil {
		return nil, err
	}
	if snap.GRN, err = l.loadGRN(f); err != nil {
		return nil, err
	}

	l.log.Info().
		Int("rm", len(snap.RMInventory.Rows)).
		Int("fg", len(snap.FGInventory.Rows)).
		Int("forecast", len(snap.Forecast.Rows)).
		Int("consumption", len(snap.Consumption.Rows)).
		Int("grn", len(snap.GRN.Rows)).
		Msg("Libro de datos cargado")

	return snap, nil
}

// sheetRows ubica la hoja sin distinguir mayúsculas y devuelve sus filas:
// encabezados primero, datos después.
func (l *Loader) sheetRows(f *excelize.File, want string) ([]string, [][]string, error) {
	var name string
	for _, s := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(want)) {
			name = s
			break
		}
	}
	if name == "" {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrSheetNotFound, want)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, nil, fmt.Errorf("leyendo hoja %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: hoja %q vacía", domain.ErrMissingColumn, name)
	}
	return rows[0], rows[1:], nil
}

func (l *Loader) loadInventory(f *excelize.File, sheet string, allowed []string) (entity.Table[entity.InventoryRecord], error) {
	var table entity.Table[entity.InventoryRecord]

	headers, data, err := l.sheetRows(f, sheet)
	if err != nil {
		return table, err
	}
	ix, absent, err := resolveColumns(sheet, headers, inventoryColumns)
	if err != nil {
		return table, err
	}
	table.AbsentColumns = absent

	allowSet := locationSet(allowed)
	skipped := 0
	for _, row := range data {
		code := planning.NormalizeKey(cell(row, ix, "item_code"))
		if code == "" {
			continue
		}
		location := cell(row, ix, "warehouse")
		if allowSet != nil {
			if _, ok := allowSet[strings.ToLower(location)]; !ok {
				skipped++
				continue
			}
		}
		table.Rows = append(table.Rows, entity.InventoryRecord{
			ItemCode:     code,
			ItemName:     cell(row, ix, "item_name"),
			Location:     location,
			Category:     cell(row, ix, "category"),
			UoM:          cell(row, ix, "uom"),
			QtyAvailable: toDecimal(cell(row, ix, "qty_available")),
			QtyInward:    toDecimal(cell(row, ix, "qty_inward")),
			QtyOnHold:    toDecimal(cell(row, ix, "qty_on_hold")),
			ValueWithTax: toDecimal(cell(row, ix, "value_with_tax")),
			ValueNoTax:   toDecimal(cell(row, ix, "value_no_tax")),
			BatchNumber:  cell(row, ix, "batch_number"),
			MfgDate:      toDate(cell(row, ix, "mfg_date")),
			ExpiryDate:   toDate(cell(row, ix, "expiry_date")),
			LastCounted:  toDate(cell(row, ix, "last_counted")),
		})
	}
	if skipped > 0 {
		l.log.Debug().Str("sheet", sheet).Int("skipped", skipped).Msg("Filas fuera de las ubicaciones válidas descartadas")
	}
	return table, nil
}

// loadForecast retiene solo las filas de la ubicación de planificación con
// forecast positivo, deduplicadas por ítem (gana la primera aparición). Sin
// columna de ubicación no se filtra: todas las filas cuentan.
func (l *Loader) loadForecast(f *excelize.File) (entity.Table[entity.ForecastRecord], error) {
	var table entity.Table[entity.ForecastRecord]

	headers, data, err := l.sheetRows(f, l.source.ForecastSheet)
	if err != nil {
		return table, err
	}
	ix, absent, err := resolveColumns(l.source.ForecastSheet, headers, forecastColumns)
	if err != nil {
		return table, err
	}
	table.AbsentColumns = absent

	_, hasLocation := ix["location"]
	seen := make(map[string]struct{})
	for _, row := range data {
		if hasLocation && !strings.EqualFold(cell(row, ix, "location"), l.planning.PlanningLocation) {
			continue
		}
		forecast := toDecimal(cell(row, ix, "forecast"))
		if forecast.LessThanOrEqual(decimal.Zero) {
			continue
		}
		code := planning.NormalizeKey(cell(row, ix, "item_code"))
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		table.Rows = append(table.Rows, entity.ForecastRecord{
			ItemCode:    code,
			ProductName: cell(row, ix, "product_name"),
			Forecast:    forecast,
			PerDayReq:   toDecimal(cell(row, ix, "per_day_req")),
			Norm:        toDecimal(cell(row, ix, "norm")),
		})
	}
	return table, nil
}

func (l *Loader) loadConsumption(f *excelize.File) (entity.Table[entity.ConsumptionRecord], error) {
	var table entity.Table[entity.ConsumptionRecord]

	headers, data, err := l.sheetRows(f, l.source.ConsumptionSheet)
	if err != nil {
		return table, err
	}
	ix, absent, err := resolveColumns(l.source.ConsumptionSheet, headers, consumptionColumns)
	if err != nil {
		return table, err
	}
	table.AbsentColumns = absent

	for _, row := range data {
		code := planning.NormalizeKey(cell(row, ix, "material_code"))
		if code == "" {
			continue
		}
		table.Rows = append(table.Rows, entity.ConsumptionRecord{
			MaterialCode: code,
			MaterialName: cell(row, ix, "material_name"),
			ProductName:  cell(row, ix, "product_name"),
			BatchDate:    toDate(cell(row, ix, "batch_date")),
			BatchQty:     toDecimal(cell(row, ix, "batch_qty")),
			ConsumedBOM:  toDecimal(cell(row, ix, "consumed_bom")),
			ProducedQty:  toDecimal(cell(row, ix, "produced_qty")),
			WastageQty:   toDecimal(cell(row, ix, "wastage_qty")),
			Warehouse:    cell(row, ix, "warehouse"),
			Category:     cell(row, ix, "category"),
		})
	}
	return table, nil
}

func (l *Loader) loadGRN(f *excelize.File) (entity.Table[entity.GRNRecord], error) {
	var table entity.Table[entity.GRNRecord]

	headers, data, err := l.sheetRows(f, l.source.GRNSheet)
	if err != nil {
		return table, err
	}
	ix, absent, err := resolveColumns(l.source.GRNSheet, headers, grnColumns)
	if err != nil {
		return table, err
	}
	table.AbsentColumns = absent

	for _, row := range data {
		grn := cell(row, ix, "grn_number")
		if grn == "" {
			continue
		}
		table.Rows = append(table.Rows, entity.GRNRecord{
			GRNNumber:    grn,
			GRNDate:      toDate(cell(row, ix, "grn_date")),
			Vendor:       cell(row, ix, "vendor"),
			PONumber:     cell(row, ix, "po_number"),
			ItemCode:     planning.NormalizeKey(cell(row, ix, "item_code")),
			QtyOrdered:   toDecimal(cell(row, ix, "qty_ordered")),
			QtyReceived:  toDecimal(cell(row, ix, "qty_received")),
			QtyRejected:  toDecimal(cell(row, ix, "qty_rejected")),
			RejectionPct: toDecimal(cell(row, ix, "rejection_pct")),
			ValueWithTax: toDecimal(cell(row, ix, "value_with_tax")),
			ValueNoTax:   toDecimal(cell(row, ix, "value_no_tax")),
			Warehouse:    cell(row, ix, "warehouse"),
		})
	}
	return table, nil
}

// locationSet normaliza la allow-list a minúsculas con trim. Lista nil
// significa "sin restricción" y devuelve set nil.
func locationSet(list []string) map[string]struct{} {
	if list == nil {
		return nil
	}
	set := make(map[string]struct{}, len(list))
	for _, l := range list {
		set[strings.ToLower(strings.TrimSpace(l))] = struct{}{}
	}
	return set
}
