package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
)

// Movement registra un cambio de stock (entrada o salida) con el snapshot del
// stock inmediatamente antes y después. Los movimientos son append-only: no se
// editan ni se borran individualmente, solo existe el borrado masivo del historial.
type Movement struct {
	ID               string
	ProductID        string
	Type             string // entrada | salida
	Quantity         int    // siempre positivo; el tipo define el signo del delta
	Reason           string // motivo obligatorio, nunca en blanco
	Date             time.Time
	PreviousQuantity int // stock_antes
	NewQuantity      int // stock_despues
	TotalValue       decimal.Decimal // precio de venta × cantidad al momento del movimiento
}
