package inventory

import (
	"context"

	"github.com/techstore/inventario-api/internal/domain/repository"
)

// Estados de conectividad del Store.
const (
	StatusConnecting = "connecting"
	StatusConnected  = "connected"
	StatusError      = "error"
	StatusOffline    = "offline"
)

// Tipos de fallo de conectividad, clasificados para mensajes accionables.
const (
	ErrTypeTableNotFound      = "TABLE_NOT_FOUND"
	ErrTypeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrTypeNetwork            = "NETWORK_ERROR"
	ErrTypeConfig             = "CONFIG_ERROR"
	ErrTypeUnknown            = "UNKNOWN_ERROR"
)

// ProbeResult resultado etiquetado de la sonda de conectividad.
type ProbeResult struct {
	Success   bool
	Message   string
	ErrorType string
}

// Prober verifica que el esquema requerido responde antes de habilitar el modo online.
type Prober interface {
	Probe(ctx context.Context) ProbeResult
}

// TxRunner ejecuta un callback con los cuatro repositorios atados a una misma
// transacción; commit si el callback devuelve nil, rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		categoryRepo repository.CategoryRepository,
		movementRepo repository.MovementRepository,
		historyRepo repository.PriceHistoryRepository,
	) error) error
}
