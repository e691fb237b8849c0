package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. Category es el nombre
// libre de la categoría; se resuelve con get-or-create.
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinStock    int             `json:"min_stock" validate:"min=0"`
	Description string          `json:"description"`
}

// UpdateProductRequest actualización parcial; solo los campos presentes se aplican.
type UpdateProductRequest struct {
	Code        *string          `json:"code" validate:"omitempty,min=1,max=100"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Quantity    *int             `json:"quantity"`
	MinStock    *int             `json:"min_stock"`
	Description *string          `json:"description"`
}

// IsEmpty indica si la actualización no trae ningún campo.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Code == nil && r.Name == nil && r.Category == nil && r.Price == nil &&
		r.Cost == nil && r.Quantity == nil && r.MinStock == nil && r.Description == nil
}

// ProductResponse salida de un producto con sus derivados.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Quantity      int             `json:"quantity"`
	MinStock      int             `json:"min_stock"`
	Description   string          `json:"description"`
	TotalValue    decimal.Decimal `json:"total_value"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProductResponse mapea la entidad a su representación HTTP.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		Cost:          p.Cost,
		Quantity:      p.Quantity,
		MinStock:      p.MinStock,
		Description:   p.Description,
		TotalValue:    p.TotalValue(),
		MarginPercent: p.MarginPercent(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// NewProductListResponse mapea una lista de entidades.
func NewProductListResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
