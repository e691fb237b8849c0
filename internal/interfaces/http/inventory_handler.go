package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstore/inventario-api/internal/application/dto"
	"github.com/techstore/inventario-api/internal/application/inventory"
)

// InventoryHandler movimientos de stock, alertas y agregados del inventario.
type InventoryHandler struct {
	store *inventory.Store
}

// NewInventoryHandler crea el handler de inventario.
func NewInventoryHandler(store *inventory.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// CreateMovement registra una entrada o salida de stock
// @Summary      Registrar movimiento
// @Description  Aplica el movimiento y guarda el snapshot de stock previo y posterior
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateMovementRequest true "Movimiento"
// @Success      201 {object} dto.MovementResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	var req dto.CreateMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo JSON inválido"})
	}

	movement, err := h.store.AddMovement(c.Context(), req.ProductID, req.Type, req.Quantity, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementResponse(movement))
}

// ListMovements devuelve los movimientos, opcionalmente filtrados por producto
// @Summary      Listar movimientos
// @Description  Más recientes primero; con product_id filtra por producto
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        product_id query string false "Filtrar por producto"
// @Success      200 {array} dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	if productID := c.Query("product_id"); productID != "" {
		return c.JSON(dto.NewMovementListResponse(h.store.MovementsByProduct(productID)))
	}
	return c.JSON(dto.NewMovementListResponse(h.store.Movements()))
}

// ClearMovements borra todo el historial de movimientos
// @Summary      Limpiar historial de movimientos
// @Description  Borra los movimientos; el stock de los productos no cambia
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.MessageResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/inventory/movements [delete]
func (h *InventoryHandler) ClearMovements(c *fiber.Ctx) error {
	if err := h.store.ClearAllMovements(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "historial de movimientos eliminado"})
}

// Alerts devuelve los productos con stock en o bajo el mínimo
// @Summary      Alertas de stock bajo
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.StockAlertResponse
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	return c.JSON(dto.NewStockAlertListResponse(h.store.LowStockAlerts()))
}

// Summary devuelve los totales del inventario y el desglose por categoría
// @Summary      Resumen de inventario
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.InventorySummaryResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(dto.InventorySummaryResponse{
		ProductCount:  len(h.store.Products()),
		TotalValue:    h.store.TotalInventoryValue(),
		TotalCost:     h.store.TotalInventoryCost(),
		LowStockCount: len(h.store.LowStockAlerts()),
		Categories:    dto.NewCategorySummaryListResponse(h.store.CategorySummaries()),
	})
}

// UpdatePrices ajusta los precios de una categoría por porcentaje
// @Summary      Ajuste masivo de precios
// @Description  Aplica el porcentaje (positivo o negativo) a todos los productos de la categoría
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BulkPriceUpdateRequest true "Ajuste"
// @Success      200 {object} dto.BulkPriceUpdateResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /api/inventory/prices [post]
func (h *InventoryHandler) UpdatePrices(c *fiber.Ctx) error {
	var req dto.BulkPriceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo JSON inválido"})
	}

	updated, err := h.store.UpdatePricesByCategory(c.Context(), req.Category, req.Percent)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BulkPriceUpdateResponse{Category: req.Category, Updated: updated})
}
