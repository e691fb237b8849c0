package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstore/inventario-api/internal/application/dto"
	"github.com/techstore/inventario-api/internal/application/inventory"
)

// StatusHandler estado de conectividad y reintento de conexión.
type StatusHandler struct {
	store *inventory.Store
}

// NewStatusHandler crea el handler de estado.
func NewStatusHandler(store *inventory.Store) *StatusHandler {
	return &StatusHandler{store: store}
}

// Health liveness del proceso
// @Summary      Health check
// @Tags         status
// @Produce      json
// @Success      200 {object} dto.MessageResponse
// @Router       /health [get]
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "ok"})
}

// Status devuelve el estado de conexión del inventario
// @Summary      Estado de conexión
// @Description  connected, offline (datos de muestra), error o connecting
// @Tags         status
// @Produce      json
// @Success      200 {object} dto.StatusResponse
// @Router       /api/status [get]
func (h *StatusHandler) Status(c *fiber.Ctx) error {
	info := h.store.Status()
	return c.JSON(dto.StatusResponse{
		Status:    info.Status,
		Message:   info.Message,
		ErrorType: info.ErrorType,
	})
}

// Retry reintenta la conexión a la base de datos
// @Summary      Reintentar conexión
// @Description  Vuelve a sondear el esquema y recargar; en fallo queda offline con datos de muestra
// @Tags         status
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.StatusResponse
// @Router       /api/status/retry [post]
func (h *StatusHandler) Retry(c *fiber.Ctx) error {
	h.store.Retry(c.Context())
	info := h.store.Status()
	return c.JSON(dto.StatusResponse{
		Status:    info.Status,
		Message:   info.Message,
		ErrorType: info.ErrorType,
	})
}
