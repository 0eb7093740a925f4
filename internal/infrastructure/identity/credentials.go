package identity

import (
	"context"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

// CredentialsProviderID nombre fijo del proveedor email/password.
const CredentialsProviderID = "credentials"

// CredentialsProvider verifica email/password contra la tabla users (bcrypt).
type CredentialsProvider struct {
	users    repository.UserRepository
	validate *validator.Validate
}

// NewCredentialsProvider construye el proveedor.
func NewCredentialsProvider(users repository.UserRepository) *CredentialsProvider {
	return &CredentialsProvider{users: users, validate: validator.New()}
}

// ID implementa Provider.
func (p *CredentialsProvider) ID() string { return CredentialsProviderID }

// Authorize rechaza (nil, nil) credenciales mal formadas, usuarios inexistentes y
// passwords que no coinciden. Solo un fallo del repositorio devuelve error.
func (p *CredentialsProvider) Authorize(ctx context.Context, creds Credentials) (*entity.User, error) {
	if err := p.validate.Struct(creds); err != nil {
		return nil, nil
	}
	user, err := p.users.FindByEmail(ctx, creds.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return nil, nil
	}
	return user, nil
}
