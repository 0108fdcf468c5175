package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrCategoryInUse = errors.New("la categoría está en uso por uno o más productos")
)
