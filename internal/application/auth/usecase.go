package auth

import (
	"github.com/techstore/inventario-api/internal/application/dto"
	"github.com/techstore/inventario-api/internal/domain"
	"github.com/techstore/inventario-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del único operador del sistema. Las credenciales viven en
// configuración (usuario + hash bcrypt), no en la base de datos: la tienda
// tiene un solo usuario administrador.
type AuthUseCase struct {
	adminUser string
	adminHash string
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminUser, adminPasswordHash string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminUser: adminUser, adminHash: adminPasswordHash, jwtCfg: jwtCfg}
}

// Login verifica usuario/password contra las credenciales configuradas y
// genera un JWT. Cualquier discrepancia devuelve ErrUnauthorized sin detallar
// qué campo falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.adminUser || uc.adminHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.adminHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		Username:  in.Username,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}
