package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BulkItemError fallo por ítem en una mutación masiva (update/delete).
type BulkItemError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}
