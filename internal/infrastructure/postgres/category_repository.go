package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techstore/inventario-api/internal/domain/entity"
	"github.com/techstore/inventario-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetOrCreate resuelve la categoría por nombre exacto, creándola si no existe.
// El upsert contra el índice único de nombre evita la carrera leer-y-quizá-insertar:
// dos escritores concurrentes obtienen el mismo id.
func (r *CategoryRepo) GetOrCreate(name string) (*entity.Category, error) {
	query := `
		INSERT INTO categorias (id, nombre)
		VALUES ($1, $2)
		ON CONFLICT (nombre) DO UPDATE SET nombre = EXCLUDED.nombre
		RETURNING id, nombre`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, uuid.New().String(), name).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, fmt.Errorf("upsert categoría: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una categoría por nombre exacto; (nil, nil) si no existe.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre FROM categorias WHERE nombre = $1 LIMIT 1`, name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoría: %w", err)
	}
	return &c, nil
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre FROM categorias ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categorías: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
