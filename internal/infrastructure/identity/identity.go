// Package identity verifica credenciales a través de proveedores registrados por nombre
// y emite la sesión firmada del dashboard.
package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/pkg/jwt"
)

// Credentials payload del formulario de login, reenviado tal cual al proveedor.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Provider verifica credenciales. Devuelve (nil, nil) si las rechaza;
// un error si no pudo decidir.
type Provider interface {
	ID() string
	Authorize(ctx context.Context, creds Credentials) (*entity.User, error)
}

// SessionConfig configuración del token de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Session sesión establecida tras un login correcto.
type Session struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
	Email     string
	Name      string
}

// Service registro de proveedores + emisión de sesiones.
type Service struct {
	providers map[string]Provider
	cfg       SessionConfig
}

// New construye el servicio con los proveedores dados.
func New(cfg SessionConfig, providers ...Provider) *Service {
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		m[p.ID()] = p
	}
	return &Service{providers: m, cfg: cfg}
}

// SignIn verifica las credenciales con el proveedor providerID y emite la sesión.
//
// Errores:
//   - *AuthError{Configuration}     proveedor no registrado.
//   - *AuthError{CredentialsSignin} credenciales rechazadas.
//   - *AuthError{CallbackRouteError} el proveedor falló.
//   - cualquier otro error (contexto cancelado, firma del token) sin categorizar.
func (s *Service) SignIn(ctx context.Context, providerID string, creds Credentials) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := s.providers[providerID]
	if !ok {
		return nil, &AuthError{Type: ErrTypeConfiguration, Err: fmt.Errorf("proveedor %q no registrado", providerID)}
	}

	user, err := p.Authorize(ctx, creds)
	if err != nil {
		return nil, &AuthError{Type: ErrTypeCallbackRoute, Err: err}
	}
	if user == nil {
		return nil, &AuthError{Type: ErrTypeCredentialsSignin}
	}

	token, err := jwt.Generate(s.cfg.Secret, user.ID, user.Email, user.Name, s.cfg.Issuer, s.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir sesión: %w", err)
	}
	return &Session{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.ExpMinutes) * time.Minute),
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
	}, nil
}
