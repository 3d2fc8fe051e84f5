package workbook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sproutlife/inventory-insights/internal/domain"
	"github.com/sproutlife/inventory-insights/pkg/config"
	"github.com/sproutlife/inventory-insights/pkg/logger"
)

var sourcePrueba = config.SourceConfig{
	RMSheet:          "RM-Inventory",
	FGSheet:          "FG-Inventory",
	ForecastSheet:    "forecast",
	ConsumptionSheet: "Consumption",
	GRNSheet:         "GRN",
}

var planningPrueba = config.PlanningConfig{
	CyclesPerYear:    26,
	PlanningLocation: "plant",
	ValidLocations:   []string{"Central", "Tumkur Warehouse", "Central Production -Bar Line"},
	SOHLocations:     []string{"Central", "Tumkur Warehouse"},
}

func logPrueba() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// escribirLibro arma un XLSX de prueba con las cinco hojas.
func escribirLibro(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	path := filepath.Join(t.TempDir(), "inventario.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func hojasMinimas() map[string][][]interface{} {
	return map[string][][]interface{}{
		"RM-Inventory": {
			{"Item SKU", "Item Name", "Warehouse", "Qty Available"},
		},
		"FG-Inventory": {
			{"Item SKU", "Item Name", "Warehouse", "Qty Available"},
		},
		"forecast": {
			{"Item code", "Location", "Forecast"},
		},
		"Consumption": {
			{"Material Code", "Material Name", "Consumed (As per BOM)"},
		},
		"GRN": {
			{"GRN Number", "PO Number", "Qty Ordered", "Qty Received"},
		},
	}
}

func cargarLibro(t *testing.T, sheets map[string][][]interface{}) (*Loader, string) {
	t.Helper()
	path := escribirLibro(t, sheets)
	src := sourcePrueba
	src.WorkbookPath = path
	return NewLoader(src, planningPrueba, logPrueba()), path
}

func TestLoad_ArchivoInexistente(t *testing.T) {
	src := sourcePrueba
	src.WorkbookPath = "/no/existe/libro.xlsx"
	l := NewLoader(src, planningPrueba, logPrueba())

	_, err := l.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestLoad_HojaFaltante(t *testing.T) {
	sheets := hojasMinimas()
	delete(sheets, "GRN")
	l, _ := cargarLibro(t, sheets)

	_, err := l.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSheetNotFound)
}

// La allow-list de RM descarta filas de ubicaciones no operativas sin
// distinguir mayúsculas; la clave del ítem se normaliza con trim y upper.
func TestLoad_InventarioRMConAllowList(t *testing.T) {
	sheets := hojasMinimas()
	sheets["RM-Inventory"] = [][]interface{}{
		{"Item SKU", "Item Name", "Warehouse", "Qty Available"},
		{"  x100 ", "Avena Base", "central", 50},
		{"X100", "Avena Base", "Line-X", 99}, // fuera de la allow-list
		{"", "Sin código", "Central", 10},    // sin clave, se descarta
	}
	l, _ := cargarLibro(t, sheets)

	snap, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.RMInventory.Rows, 1)

	row := snap.RMInventory.Rows[0]
	assert.Equal(t, "X100", row.ItemCode)
	assert.Equal(t, "central", row.Location)
	assert.Equal(t, "50", row.QtyAvailable.String())
	assert.Contains(t, snap.RMInventory.AbsentColumns, "category")
}

// El forecast retiene solo filas "plant" con valor positivo, deduplicadas por
// ítem con la primera aparición ganando.
func TestLoad_ForecastFiltradoYDeduplicado(t *testing.T) {
	sheets := hojasMinimas()
	sheets["forecast"] = [][]interface{}{
		{"Item code", "Location", "Forecast"},
		{"x100", " Plant ", 260},
		{"X100", "plant", 999}, // duplicado: gana la primera
		{"Y200", "Depot", 100}, // otra ubicación
		{"Z300", "plant", 0},   // sin demanda
		{"W400", "plant", "no-numérico"},
	}
	l, _ := cargarLibro(t, sheets)

	snap, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Forecast.Rows, 1)
	assert.Equal(t, "X100", snap.Forecast.Rows[0].ItemCode)
	assert.Equal(t, "260", snap.Forecast.Rows[0].Forecast.String())
}

// Sin columna Location la hoja de forecast no se filtra por ubicación.
func TestLoad_ForecastSinColumnaLocation(t *testing.T) {
	sheets := hojasMinimas()
	sheets["forecast"] = [][]interface{}{
		{"Item code", "Forecast"},
		{"X100", 260},
		{"Y200", 52},
	}
	l, _ := cargarLibro(t, sheets)

	snap, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Forecast.Rows, 2)
	assert.Contains(t, snap.Forecast.AbsentColumns, "location")
}

func TestLoad_ConsumoConCeldasSucias(t *testing.T) {
	sheets := hojasMinimas()
	sheets["Consumption"] = [][]interface{}{
		{"Material Code", "Material Name", "Batch Date", "Consumed (As per BOM)"},
		{"M1", "Avena", "2025-10-05", "1,250.5"},
		{"M2", "Miel", "fecha-rota", "texto"},
	}
	l, _ := cargarLibro(t, sheets)

	snap, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Consumption.Rows, 2)

	m1 := snap.Consumption.Rows[0]
	require.NotNil(t, m1.BatchDate)
	assert.Equal(t, "2025-10-05", m1.BatchDate.Format("2006-01-02"))
	assert.Equal(t, "1250.5", m1.ConsumedBOM.String(), "los separadores de miles se limpian")

	m2 := snap.Consumption.Rows[1]
	assert.Nil(t, m2.BatchDate, "fecha no parseable queda nil")
	assert.True(t, m2.ConsumedBOM.IsZero(), "celda no numérica degrada a cero")
}

func TestLoad_GRNConservaPlaceholderDePO(t *testing.T) {
	sheets := hojasMinimas()
	sheets["GRN"] = [][]interface{}{
		{"GRN Number", "PO Number", "Qty Ordered", "Qty Received"},
		{"GRN-01", "PO-1", 100, 80},
		{"GRN-02", "-", 10, 10},
		{"", "PO-9", 5, 5}, // sin número de GRN, se descarta
	}
	l, _ := cargarLibro(t, sheets)

	snap, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.GRN.Rows, 2)

	assert.True(t, snap.GRN.Rows[0].HasPO())
	assert.False(t, snap.GRN.Rows[1].HasPO(), "el placeholder se conserva crudo pero no cuenta como PO")
}

func TestLoad_ColumnaClaveAusente(t *testing.T) {
	sheets := hojasMinimas()
	sheets["Consumption"] = [][]interface{}{
		{"Material Name", "Consumed (As per BOM)"},
	}
	l, _ := cargarLibro(t, sheets)

	_, err := l.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestSnapshotStore_RefreshYFallo(t *testing.T) {
	sheets := hojasMinimas()
	sheets["RM-Inventory"] = append(sheets["RM-Inventory"], []interface{}{"X100", "Avena", "Central", 50})
	l, path := cargarLibro(t, sheets)

	store := NewSnapshotStore(l, logPrueba())

	// Primera lectura dispara la carga inicial.
	snap1, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap1)
	assert.NotEmpty(t, snap1.ID)
	assert.Len(t, snap1.RMInventory.Rows, 1)

	// Refresh publica un snapshot nuevo con identidad propia.
	snap2, err := store.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, snap1.ID, snap2.ID)

	// Con el archivo desaparecido el refresh falla pero el vigente sobrevive.
	require.NoError(t, os.Remove(path))
	_, err = store.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)

	vigente, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap2.ID, vigente.ID)
}
