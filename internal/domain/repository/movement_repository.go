package repository

import "github.com/techstore/inventario-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement (DIP).
// Los movimientos son append-only: no hay update ni delete individual.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListAll devuelve todos los movimientos ordenados por fecha descendente.
	ListAll() ([]*entity.Movement, error)
	// DeleteAll borra todo el historial de movimientos.
	DeleteAll() error
}
