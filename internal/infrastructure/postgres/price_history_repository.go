package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/techstore/inventario-api/internal/domain/entity"
	"github.com/techstore/inventario-api/internal/domain/repository"
)

var _ repository.PriceHistoryRepository = (*PriceHistoryRepo)(nil)

// PriceHistoryRepo implementación del puerto PriceHistoryRepository sobre PostgreSQL (usable con pool o tx).
type PriceHistoryRepo struct {
	q Querier
}

// NewPriceHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceHistoryRepository(q Querier) *PriceHistoryRepo {
	return &PriceHistoryRepo{q: q}
}

// Create persiste un registro de cambio de precio.
func (r *PriceHistoryRepo) Create(history *entity.PriceHistory) error {
	if history.ID == "" {
		history.ID = uuid.New().String()
	}
	query := `
		INSERT INTO historial_precios (id, producto_id, precio_anterior, precio_nuevo, fecha, motivo)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		history.ID, history.ProductID, history.PreviousPrice, history.NewPrice,
		history.Date, history.Reason,
	)
	if err != nil {
		return fmt.Errorf("insert historial de precio: %w", err)
	}
	return nil
}

// ListAll devuelve todo el historial de precios ordenado por fecha descendente.
func (r *PriceHistoryRepo) ListAll() ([]*entity.PriceHistory, error) {
	query := `
		SELECT id, producto_id, precio_anterior, precio_nuevo, fecha, motivo
		FROM historial_precios
		ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list historial de precios: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceHistory
	for rows.Next() {
		var h entity.PriceHistory
		if err := rows.Scan(&h.ID, &h.ProductID, &h.PreviousPrice, &h.NewPrice, &h.Date, &h.Reason); err != nil {
			return nil, fmt.Errorf("scan historial de precio: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
