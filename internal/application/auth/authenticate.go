package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/identity"
)

// Mensajes que ve el usuario en el formulario de login.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

// SignInService mecanismo externo de inicio de sesión (lo implementa *identity.Service).
type SignInService interface {
	SignIn(ctx context.Context, providerID string, creds identity.Credentials) (*identity.Session, error)
}

// AuthUseCase acción de login por credenciales.
type AuthUseCase struct {
	signIn SignInService
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(signIn SignInService) *AuthUseCase {
	return &AuthUseCase{signIn: signIn}
}

// Authenticate reenvía las credenciales al proveedor "credentials".
//
//   - éxito: ("", sesión, nil).
//   - AuthError CredentialsSignin: (MsgInvalidCredentials, nil, nil).
//   - cualquier otro AuthError: (MsgSomethingWentWrong, nil, nil).
//   - error no categorizado: ("", nil, err); no se enmascara.
//
// _prevState es el mensaje del intento anterior; no se usa para decidir nada.
func (uc *AuthUseCase) Authenticate(ctx context.Context, _ string, form dto.CredentialsForm) (string, *identity.Session, error) {
	sess, err := uc.signIn.SignIn(ctx, identity.CredentialsProviderID, identity.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})
	if err == nil {
		return "", sess, nil
	}

	var authErr *identity.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Type {
		case identity.ErrTypeCredentialsSignin:
			return MsgInvalidCredentials, nil, nil
		default:
			return MsgSomethingWentWrong, nil, nil
		}
	}
	return "", nil, err
}
