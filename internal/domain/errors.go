package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptyReason       = errors.New("el motivo del movimiento es obligatorio")
	ErrOffline           = errors.New("no hay conexión a la base de datos; funcionalidad limitada en modo offline")
	ErrEmptyUpdate       = errors.New("no hay campos para actualizar")
)

// InsufficientStockError detalla un rechazo de salida por stock insuficiente.
// Envuelve ErrInsufficientStock para poder chequearlo con errors.Is.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
