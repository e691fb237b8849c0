package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/techstore/inventario-api/internal/application/inventory"
)

var _ inventory.Prober = (*Prober)(nil)

// requiredTables relaciones que deben responder antes de habilitar el modo online.
var requiredTables = []string{"productos", "categorias", "movimientos"}

// Prober ejecuta la sonda de conectividad contra el esquema requerido.
type Prober struct {
	q Querier
}

// NewProber construye la sonda. Pasar pool o tx (Querier).
func NewProber(q Querier) *Prober {
	return &Prober{q: q}
}

// Probe lanza una consulta trivial de existencia contra cada relación requerida,
// en secuencia y sin reintentos. El primer fallo se clasifica y corta la sonda.
func (p *Prober) Probe(ctx context.Context) inventory.ProbeResult {
	for _, table := range requiredTables {
		if _, err := p.q.Exec(ctx, "SELECT id FROM "+table+" LIMIT 1"); err != nil {
			return classifyProbeError(err)
		}
	}
	return inventory.ProbeResult{Success: true, Message: "conexión exitosa, esquema completo"}
}

// classifyProbeError clasifica el error por código SQLSTATE y, en su defecto,
// por substrings conocidos del mensaje. Errores no reconocidos pasan con su
// mensaje crudo bajo UNKNOWN_ERROR.
func classifyProbeError(err error) inventory.ProbeResult {
	msg := err.Error()

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01": // undefined_table
			return inventory.ProbeResult{Message: "alguna tabla no existe; ejecuta el script de creación del esquema", ErrorType: inventory.ErrTypeTableNotFound}
		case "28P01", "28000": // invalid_password / invalid_authorization
			return inventory.ProbeResult{Message: "credenciales inválidas; verifica DATABASE_URL", ErrorType: inventory.ErrTypeInvalidCredentials}
		}
	}

	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "relation") && strings.Contains(lower, "does not exist"):
		return inventory.ProbeResult{Message: "alguna tabla no existe; ejecuta el script de creación del esquema", ErrorType: inventory.ErrTypeTableNotFound}
	case strings.Contains(lower, "authentication") || strings.Contains(lower, "password"):
		return inventory.ProbeResult{Message: "credenciales inválidas; verifica DATABASE_URL", ErrorType: inventory.ErrTypeInvalidCredentials}
	case strings.Contains(lower, "connect") || strings.Contains(lower, "dial") || strings.Contains(lower, "timeout"):
		return inventory.ProbeResult{Message: "error de red; verifica la conexión y la URL de la base de datos", ErrorType: inventory.ErrTypeNetwork}
	}
	return inventory.ProbeResult{Message: msg, ErrorType: inventory.ErrTypeUnknown}
}
