package repository

import "github.com/techstore/inventario-api/internal/domain/entity"

// PriceHistoryRepository define el puerto de persistencia para PriceHistory (DIP).
type PriceHistoryRepository interface {
	Create(history *entity.PriceHistory) error
	// ListAll devuelve todo el historial ordenado por fecha descendente.
	ListAll() ([]*entity.PriceHistory, error)
}
