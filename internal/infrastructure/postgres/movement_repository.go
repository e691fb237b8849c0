package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/techstore/inventario-api/internal/domain/entity"
	"github.com/techstore/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento con su snapshot de stock antes/después.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (id, producto_id, fecha, tipo, cantidad, motivo, stock_antes, stock_despues, valor_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Date, toDBMovementType(movement.Type),
		movement.Quantity, movement.Reason, movement.PreviousQuantity, movement.NewQuantity,
		movement.TotalValue,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListAll devuelve todos los movimientos ordenados por fecha descendente.
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	query := `
		SELECT id, producto_id, fecha, tipo, cantidad, motivo, stock_antes, stock_despues, valor_total
		FROM movimientos
		ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var dbType string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Date, &dbType, &m.Quantity,
			&m.Reason, &m.PreviousQuantity, &m.NewQuantity, &m.TotalValue); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		m.Type = fromDBMovementType(dbType)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteAll borra todo el historial de movimientos (operación masiva, sin filtro).
func (r *MovementRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM movimientos`); err != nil {
		return fmt.Errorf("delete movimientos: %w", err)
	}
	return nil
}
