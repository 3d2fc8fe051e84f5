package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/domain"
	"github.com/sproutlife/inventory-insights/pkg/jwt"
)

// Config credenciales del operador y parámetros de emisión del token.
// El tablero es interno: una sola cuenta, definida por entorno, sin registro.
type Config struct {
	Secret       string
	ExpMinutes   int
	Issuer       string
	Username     string
	PasswordHash string // bcrypt
}

// AuthUseCase login del operador.
type AuthUseCase struct {
	cfg Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login verifica usuario/password contra la cuenta configurada y emite el JWT.
// Usuario desconocido y password incorrecta responden igual (ErrUnauthorized):
// no se filtra cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.cfg.PasswordHash == "" {
		// Sin hash configurado no hay login posible; nunca se acepta password vacía.
		return nil, domain.ErrUnauthorized
	}
	if !strings.EqualFold(strings.TrimSpace(in.Username), uc.cfg.Username) {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.Secret, uc.cfg.Username, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.cfg.ExpMinutes * 60,
	}, nil
}
