package views

import (
	"sort"
	"strings"
	"time"
)

// matchesSearch hace match de subcadena sin distinguir mayúsculas contra las
// columnas identificadoras de la vista. Búsqueda vacía siempre pasa.
func matchesSearch(search string, fields ...string) bool {
	s := strings.ToLower(strings.TrimSpace(search))
	if s == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), s) {
			return true
		}
	}
	return false
}

// sameValue compara un valor de filtro exacto (dropdown) contra el de la fila,
// con trim y sin distinguir mayúsculas. Filtro vacío siempre pasa.
func sameValue(filter, value string) bool {
	f := strings.TrimSpace(filter)
	if f == "" {
		return true
	}
	return strings.EqualFold(f, strings.TrimSpace(value))
}

// monthLabel etiqueta de mes de una fecha de lote, formato "Jan-2006".
// Fecha nil (celda no parseable) etiqueta vacío y no entra al dropdown.
func monthLabel(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("Jan-2006")
}

// collectSorted devuelve los valores únicos no vacíos, ordenados.
func collectSorted(values map[string]struct{}) []string {
	out := make([]string, 0, len(values))
	for v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// sortedMonths ordena etiquetas "Jan-2006" cronológicamente.
func sortedMonths(values map[string]struct{}) []string {
	labels := collectSorted(values)
	sort.Slice(labels, func(i, j int) bool {
		ti, erri := time.Parse("Jan-2006", labels[i])
		tj, errj := time.Parse("Jan-2006", labels[j])
		if erri != nil || errj != nil {
			return labels[i] < labels[j]
		}
		return ti.Before(tj)
	})
	return labels
}

// locationSet construye el conjunto de ubicaciones permitidas, normalizado a
// minúsculas con trim para comparar sin sensibilidad a mayúsculas.
func locationSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, l := range list {
		set[strings.ToLower(strings.TrimSpace(l))] = struct{}{}
	}
	return set
}

// inLocationSet indica si la ubicación de una fila pertenece al conjunto.
func inLocationSet(set map[string]struct{}, location string) bool {
	_, ok := set[strings.ToLower(strings.TrimSpace(location))]
	return ok
}
