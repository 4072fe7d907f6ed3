package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ItemResponse envoltorio {"item": ...} de las respuestas de un solo recurso.
type ItemResponse[T any] struct {
	Item T `json:"item"`
}

// ListResponse envoltorio {"items": [...]} de los listados.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// DeletedResponse respuesta de un borrado exitoso.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
