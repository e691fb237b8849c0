package inventory

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// sampleProducts devuelve el catálogo fijo de demostración que puebla el modo
// offline. Los IDs son estables para que la UI pueda navegar sin backend.
func sampleProducts() []*entity.Product {
	now := time.Now()
	return []*entity.Product{
		{
			ID:          "demo-1",
			Code:        "TECH-NB-001",
			Name:        "Notebook Dell Inspiron 15",
			CategoryID:  "demo-cat-1",
			Category:    "Notebooks",
			Price:       decimal.NewFromInt(950000),
			Cost:        decimal.NewFromInt(690000),
			Quantity:    11,
			MinStock:    4,
			Description: "Notebook 15.6\" 8GB RAM 256GB SSD",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "demo-2",
			Code:        "TECH-KB-001",
			Name:        "Teclado Logitech K380",
			CategoryID:  "demo-cat-2",
			Category:    "Periféricos",
			Price:       decimal.NewFromInt(135000),
			Cost:        decimal.NewFromInt(85000),
			Quantity:    2,
			MinStock:    8,
			Description: "Teclado inalámbrico multidispositivo",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "demo-3",
			Code:        "TECH-NB-002",
			Name:        "Notebook HP Pavilion",
			CategoryID:  "demo-cat-1",
			Category:    "Notebooks",
			Price:       decimal.NewFromInt(950000),
			Cost:        decimal.NewFromInt(690000),
			Quantity:    1,
			MinStock:    4,
			Description: "Notebook 14\" 16GB RAM 512GB SSD",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
