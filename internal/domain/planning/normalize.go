package planning

import "strings"

// NormalizeKey canonicaliza un identificador de ítem/material para joins entre
// hojas: trim + mayúsculas. Idempotente y sin efectos. Una entrada vacía (o de
// solo espacios) normaliza a "", y una clave vacía nunca hace match con una
// poblada: los loaders descartan filas sin clave y los lookups saltan "".
func NormalizeKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
