package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstore/inventario-api/internal/application/dto"
	"github.com/techstore/inventario-api/internal/application/inventory"
	"github.com/techstore/inventario-api/internal/domain"
)

// ProductHandler CRUD de productos sobre el Store de inventario.
type ProductHandler struct {
	store *inventory.Store
}

// NewProductHandler crea el handler de productos.
func NewProductHandler(store *inventory.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List devuelve el catálogo completo
// @Summary      Listar productos
// @Description  Devuelve los productos activos ordenados por nombre
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.NewProductListResponse(h.store.Products()))
}

// Get devuelve un producto por su ID
// @Summary      Obtener producto
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID del producto"
// @Success      200 {object} dto.ProductResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product := h.store.ProductByID(c.Params("id"))
	if product == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Create registra un producto nuevo
// @Summary      Crear producto
// @Description  Crea el producto; la categoría se resuelve por nombre con get-or-create
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateProductRequest true "Producto"
// @Success      201 {object} dto.ProductResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo JSON inválido"})
	}

	product, err := h.store.AddProduct(c.Context(), inventory.ProductInput{
		Code:        req.Code,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProductResponse(product))
}

// Update aplica una actualización parcial
// @Summary      Actualizar producto
// @Description  Solo los campos presentes en el cuerpo se aplican; un cambio de precio deja historial
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID del producto"
// @Param        request body dto.UpdateProductRequest true "Campos a actualizar"
// @Success      200 {object} dto.ProductResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo JSON inválido"})
	}

	id := c.Params("id")
	err := h.store.UpdateProduct(c.Context(), id, inventory.ProductPatch{
		Code:        req.Code,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}

	product := h.store.ProductByID(id)
	if product == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Delete elimina (soft delete) un producto
// @Summary      Eliminar producto
// @Description  Baja lógica; los movimientos históricos del producto se conservan
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID del producto"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	name, err := h.store.DeleteProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado: " + name})
}

// PriceHistory devuelve el historial de precios de un producto
// @Summary      Historial de precios
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID del producto"
// @Success      200 {array} dto.PriceHistoryResponse
// @Router       /api/products/{id}/price-history [get]
func (h *ProductHandler) PriceHistory(c *fiber.Ctx) error {
	history := h.store.PriceHistoryByProduct(c.Params("id"))
	return c.JSON(dto.NewPriceHistoryListResponse(history))
}
