package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/domain"
	"github.com/techstore/inventario-api/internal/domain/entity"
	"github.com/techstore/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. valor_total es columna generada, no se escribe.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, codigo, nombre, categoria_id, stock_actual, stock_minimo, costo_unitario, precio_venta, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.CategoryID,
		product.Quantity, product.MinStock, product.Cost, product.Price,
		product.Description, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

const productColumns = `p.id, p.codigo, p.nombre, p.categoria_id, p.stock_actual, p.stock_minimo, p.costo_unitario, p.precio_venta, COALESCE(p.descripcion, ''), p.created_at, p.updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.CategoryID, &p.Quantity, &p.MinStock,
		&p.Cost, &p.Price, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un producto activo por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos p WHERE p.id = $1 AND p.deleted_at IS NULL`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE) antes de leerla.
// Evita que dos movimientos concurrentes lean el mismo stock_antes. Usar dentro de una tx.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos p WHERE p.id = $1 AND p.deleted_at IS NULL FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto for update: %w", err)
	}
	return p, nil
}

// ListActive lista productos no eliminados con el nombre de categoría resuelto
// (LEFT JOIN), ordenados por nombre ascendente.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `, COALESCE(c.nombre, 'Sin categoría')
		FROM productos p
		LEFT JOIN categorias c ON p.categoria_id = c.id
		WHERE p.deleted_at IS NULL
		ORDER BY p.nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.CategoryID, &p.Quantity, &p.MinStock,
			&p.Cost, &p.Price, &p.Description, &p.CreatedAt, &p.UpdatedAt, &p.Category); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListActiveByCategory lista productos no eliminados de una categoría.
func (r *ProductRepo) ListActiveByCategory(categoryID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos p
		WHERE p.categoria_id = $1 AND p.deleted_at IS NULL
		ORDER BY p.nombre ASC`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list productos por categoría: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.CategoryID, &p.Quantity, &p.MinStock,
			&p.Cost, &p.Price, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update construye un UPDATE solo con los campos presentes. ErrEmptyUpdate si
// la actualización no toca nada; ErrNotFound si el producto no existe o está eliminado.
func (r *ProductRepo) Update(id string, fields repository.ProductUpdate) error {
	if fields.IsEmpty() {
		return domain.ErrEmptyUpdate
	}
	set := []string{}
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if fields.Code != nil {
		add("codigo", *fields.Code)
	}
	if fields.Name != nil {
		add("nombre", *fields.Name)
	}
	if fields.CategoryID != nil {
		add("categoria_id", *fields.CategoryID)
	}
	if fields.Quantity != nil {
		add("stock_actual", *fields.Quantity)
	}
	if fields.MinStock != nil {
		add("stock_minimo", *fields.MinStock)
	}
	if fields.Cost != nil {
		add("costo_unitario", *fields.Cost)
	}
	if fields.Price != nil {
		add("precio_venta", *fields.Price)
	}
	if fields.Description != nil {
		add("descripcion", *fields.Description)
	}
	set = append(set, "updated_at = now()")

	query := fmt.Sprintf("UPDATE productos SET %s WHERE id = $1 AND deleted_at IS NULL", strings.Join(set, ", "))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity actualiza solo el stock del producto (usado por los movimientos).
func (r *ProductRepo) UpdateQuantity(id string, quantity int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePrice actualiza solo el precio de venta (usado por el ajuste masivo por categoría).
func (r *ProductRepo) UpdatePrice(id string, price decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET precio_venta = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id, price,
	)
	if err != nil {
		return fmt.Errorf("update precio: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el producto como eliminado (la fila queda excluida de las
// cargas siguientes) y devuelve el nombre previo para el mensaje de confirmación.
func (r *ProductRepo) SoftDelete(id string) (string, error) {
	var name string
	err := r.q.QueryRow(context.Background(),
		`UPDATE productos SET deleted_at = now(), updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL
		 RETURNING nombre`,
		id,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("soft delete producto: %w", err)
	}
	return name, nil
}
