package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInUse            = errors.New("recurso referenciado por otros registros")
	ErrCategoryNotFound = errors.New("la categoría no existe")
)
