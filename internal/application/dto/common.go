package dto

import "time"

// ViewMeta identifica el snapshot del que salió una vista derivada. Se incluye
// en toda respuesta para poder correlacionar con los logs de carga.
type ViewMeta struct {
	SnapshotID string    `json:"snapshot_id"`
	LoadedAt   time.Time `json:"loaded_at"`
	RowCount   int       `json:"row_count"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
