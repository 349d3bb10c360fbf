package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrDuplicateProduct   = errors.New("el producto ya tiene un renglón en el documento")
	ErrLineBusy           = errors.New("el renglón tiene una operación en curso")
	ErrDocumentPosted     = errors.New("el documento ya fue contabilizado")
	ErrSessionNotFound    = errors.New("no hay sesión de edición abierta para el documento")
)
