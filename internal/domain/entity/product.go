package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Quantity refleja la suma de los deltas de movimientos desde la creación;
// la capa de aplicación lo mantiene junto con cada movimiento en la misma transacción.
type Product struct {
	ID          string
	Code        string // código único del producto (ej. TECH-NB-001)
	Name        string
	CategoryID  string
	Category    string          // nombre de la categoría, resuelto en el JOIN de carga
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo unitario
	Quantity    int             // stock actual (>= 0, CHECK en schema)
	MinStock    int             // umbral de reposición
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalValue devuelve precio × stock actual.
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// TotalCost devuelve costo × stock actual.
func (p *Product) TotalCost() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// MarginPercent devuelve el margen (precio - costo) / precio como porcentaje.
// Si el precio es cero devuelve cero.
func (p *Product) MarginPercent() decimal.Decimal {
	if p.Price.IsZero() {
		return decimal.Zero
	}
	return p.Price.Sub(p.Cost).Div(p.Price).Mul(decimal.NewFromInt(100))
}
