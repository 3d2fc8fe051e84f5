package entity

import "time"

// Table agrupa las filas de un dataset junto con las columnas opcionales que
// la hoja realmente trajo. Cuando una columna opcional falta, la vista que
// depende de ella degrada (no ofrece ese filtro/métrica) en vez de fallar.
type Table[T any] struct {
	Rows []T
	// AbsentColumns: nombres lógicos de columnas que la hoja no contenía.
	AbsentColumns []string
}

// HasColumn indica si la columna lógica estaba presente en la hoja de origen.
func (t Table[T]) HasColumn(logical string) bool {
	for _, c := range t.AbsentColumns {
		if c == logical {
			return false
		}
	}
	return true
}

// Snapshot es el punto-en-el-tiempo completo del libro de datos. Inmutable una
// vez cargado: las sesiones concurrentes leen el mismo puntero sin locks y el
// refresh lo reemplaza por swap atómico en el store.
type Snapshot struct {
	ID       string // uuid, identifica esta carga en logs y respuestas
	LoadedAt time.Time

	RMInventory Table[InventoryRecord]
	FGInventory Table[InventoryRecord]
	Forecast    Table[ForecastRecord]
	Consumption Table[ConsumptionRecord]
	GRN         Table[GRNRecord]
}
