package repository

import (
	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// ProductUpdate campos opcionales para una actualización parcial de producto.
// Solo los campos no-nil se incluyen en el UPDATE.
type ProductUpdate struct {
	Code        *string
	Name        *string
	CategoryID  *string
	Quantity    *int
	MinStock    *int
	Cost        *decimal.Decimal
	Price       *decimal.Decimal
	Description *string
}

// IsEmpty indica si la actualización no toca ningún campo.
func (u ProductUpdate) IsEmpty() bool {
	return u.Code == nil && u.Name == nil && u.CategoryID == nil &&
		u.Quantity == nil && u.MinStock == nil && u.Cost == nil &&
		u.Price == nil && u.Description == nil
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID obtiene un producto activo por ID; (nil, nil) si no existe.
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) antes de leerla.
	// Usar solo dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.Product, error)
	// ListActive lista productos no eliminados con el nombre de categoría resuelto,
	// ordenados por nombre ascendente.
	ListActive() ([]*entity.Product, error)
	// ListActiveByCategory lista productos no eliminados de una categoría.
	ListActiveByCategory(categoryID string) ([]*entity.Product, error)
	Update(id string, fields ProductUpdate) error
	UpdateQuantity(id string, quantity int) error
	UpdatePrice(id string, price decimal.Decimal) error
	// SoftDelete marca el producto como eliminado y devuelve el nombre previo
	// para el mensaje de confirmación. ErrNotFound si no existe o ya está eliminado.
	SoftDelete(id string) (name string, err error)
}
