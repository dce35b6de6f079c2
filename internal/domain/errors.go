package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrInvalidLineItem   = errors.New("línea de venta inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
