package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmptyFilter        = errors.New("se requiere al menos un filtro")
	ErrInvalidMarkup      = errors.New("el porcentaje produce un factor no positivo")
	ErrPercentOutOfRange  = errors.New("porcentaje fuera del rango permitido")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)
