package workbook

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// cell devuelve el valor recortado de una columna lógica en una fila.
// excelize recorta las celdas vacías al final de cada fila, así que el índice
// puede quedar fuera de rango; en ese caso la celda cuenta como vacía.
func cell(row []string, index map[string]int, logical string) string {
	idx, ok := index[logical]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// toDecimal convierte el texto de una celda a decimal. Celdas vacías o no
// numéricas valen 0, igual que el resto del pipeline: una celda sucia no
// descarta la fila.
func toDecimal(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Formatos de fecha que aparecen en los exportes del ERP, del más al menos
// frecuente. excelize entrega la celda ya formateada según su estilo.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"01-02-06",
	"1/2/06",
	"2006-01-02 15:04:05",
	"02-01-2006 15:04",
	"2-Jan-06",
	"02-Jan-2006",
	time.RFC3339,
}

// toDate convierte el texto de una celda a fecha. Celdas vacías o no
// parseables quedan nil (fecha desconocida, no fecha cero).
func toDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
