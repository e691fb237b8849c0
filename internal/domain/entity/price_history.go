package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistory registra un cambio de precio de venta de un producto.
// Se escribe en la misma transacción que el cambio de precio, tanto en la
// actualización individual como en el ajuste masivo por categoría.
type PriceHistory struct {
	ID            string
	ProductID     string
	PreviousPrice decimal.Decimal
	NewPrice      decimal.Decimal
	Date          time.Time
	Reason        string
}
