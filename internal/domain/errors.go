package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrWarehouseNotFound = errors.New("bodega no encontrada")
	ErrNoMatchingOrder   = errors.New("no hay orden pendiente que coincida")
	ErrOrderFulfilled    = errors.New("la orden ya fue surtida")
	ErrPersistence       = errors.New("error de persistencia")
)
