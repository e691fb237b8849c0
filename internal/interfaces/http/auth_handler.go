package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstore/inventario-api/internal/application/auth"
	"github.com/techstore/inventario-api/internal/application/dto"
)

// AuthHandler expone el login del operador.
type AuthHandler struct {
	useCase *auth.AuthUseCase
}

// NewAuthHandler crea el handler de autenticación.
func NewAuthHandler(useCase *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

// Login autentica al operador y emite un JWT
// @Summary      Login del operador
// @Description  Valida usuario y contraseña y devuelve un Bearer Token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credenciales"
// @Success      200 {object} dto.LoginResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo JSON inválido"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son obligatorios"})
	}

	resp, err := h.useCase.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
