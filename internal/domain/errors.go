package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrSourceUnavailable: el libro de datos no existe o no se pudo abrir.
	// Es el único error que se propaga tal cual al usuario; todo lo demás
	// degrada a un valor por defecto.
	ErrSourceUnavailable = errors.New("fuente de datos no disponible")

	// ErrSheetNotFound: el libro no contiene una hoja esperada.
	ErrSheetNotFound = errors.New("hoja no encontrada en el libro")

	// ErrMissingColumn: una hoja no tiene una columna clave; columnas no clave
	// ausentes degradan (métrica/filtro ausente) en lugar de producir este error.
	ErrMissingColumn = errors.New("columna requerida no encontrada")

	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)
