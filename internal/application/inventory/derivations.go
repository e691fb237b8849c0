package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// Lecturas puras sobre las colecciones en memoria. Ningún método de este
// archivo toca el gateway; todas devuelven copias para que el llamador no
// pueda mutar el estado interno.

// Products devuelve la lista de productos cargada (orden por nombre).
func (s *Store) Products() []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID busca un producto en memoria; nil si no está.
func (s *Store) ProductByID(id string) *entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Movements devuelve todos los movimientos (fecha descendente).
func (s *Store) Movements() []*entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Movement, len(s.movements))
	copy(out, s.movements)
	return out
}

// MovementsByProduct filtra los movimientos de un producto, fecha descendente.
func (s *Store) MovementsByProduct(productID string) []*entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Movement
	for _, m := range s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// PriceHistoryByProduct filtra el historial de precios de un producto, fecha descendente.
func (s *Store) PriceHistoryByProduct(productID string) []*entity.PriceHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.PriceHistory
	for _, h := range s.history {
		if h.ProductID == productID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// LowStockAlerts devuelve una alerta por cada producto con stock actual menor
// o igual a su stock mínimo. Se recalcula en cada llamada, nunca se cachea.
func (s *Store) LowStockAlerts() []entity.StockAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var alerts []entity.StockAlert
	for _, p := range s.products {
		if p.Quantity <= p.MinStock {
			alerts = append(alerts, entity.StockAlert{
				Product:      *p,
				CurrentStock: p.Quantity,
				MinStock:     p.MinStock,
				Difference:   p.MinStock - p.Quantity,
			})
		}
	}
	return alerts
}

// TotalInventoryValue devuelve Σ precio × stock sobre los productos cargados.
func (s *Store) TotalInventoryValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(p.TotalValue())
	}
	return total
}

// TotalInventoryCost devuelve Σ costo × stock sobre los productos cargados.
func (s *Store) TotalInventoryCost() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(p.TotalCost())
	}
	return total
}

// CategorySummary agregado por categoría para el reporte de categorías.
type CategorySummary struct {
	Name          string
	ProductCount  int
	TotalQuantity int
	TotalValue    decimal.Decimal
	TotalCost     decimal.Decimal
	MarginPercent decimal.Decimal // (valor - costo) / valor × 100 del agregado
}

// CategorySummaries agrega los productos cargados por nombre de categoría,
// ordenado alfabéticamente.
func (s *Store) CategorySummaries() []CategorySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byName := map[string]*CategorySummary{}
	for _, p := range s.products {
		cs, ok := byName[p.Category]
		if !ok {
			cs = &CategorySummary{Name: p.Category, TotalValue: decimal.Zero, TotalCost: decimal.Zero}
			byName[p.Category] = cs
		}
		cs.ProductCount++
		cs.TotalQuantity += p.Quantity
		cs.TotalValue = cs.TotalValue.Add(p.TotalValue())
		cs.TotalCost = cs.TotalCost.Add(p.TotalCost())
	}

	out := make([]CategorySummary, 0, len(byName))
	for _, cs := range byName {
		if !cs.TotalValue.IsZero() {
			cs.MarginPercent = cs.TotalValue.Sub(cs.TotalCost).Div(cs.TotalValue).Mul(decimal.NewFromInt(100))
		}
		out = append(out, *cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
