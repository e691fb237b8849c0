package repository

import "github.com/techstore/inventario-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// GetOrCreate resuelve una categoría por nombre exacto (case-sensitive),
	// creándola si no existe. Upsert contra el índice único de nombre: dos
	// llamadas concurrentes con el mismo nombre devuelven el mismo id.
	GetOrCreate(name string) (*entity.Category, error)
	// GetByName devuelve (nil, nil) si la categoría no existe.
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
