package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// toDBMovementType mapea el tipo de aplicación (minúscula) al valor almacenado
// ('Entrada'/'Salida'), como en el esquema original.
func toDBMovementType(t string) string {
	if t == entity.MovementEntrada {
		return "Entrada"
	}
	return "Salida"
}

// fromDBMovementType mapea el valor almacenado al tipo de aplicación.
func fromDBMovementType(t string) string {
	if strings.EqualFold(t, "Entrada") {
		return entity.MovementEntrada
	}
	return entity.MovementSalida
}
