package identity

import "fmt"

// Categorías de AuthError.
const (
	ErrTypeCredentialsSignin = "CredentialsSignin"  // credenciales rechazadas por el proveedor
	ErrTypeCallbackRoute     = "CallbackRouteError" // el proveedor falló al autorizar (ej. DB caída)
	ErrTypeConfiguration     = "Configuration"      // proveedor inexistente o mal configurado
)

// AuthError error categorizado del inicio de sesión. Todo error que SignIn no
// devuelve como *AuthError es inesperado y quien llama debe propagarlo.
type AuthError struct {
	Type string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("identity: %s: %v", e.Type, e.Err)
	}
	return "identity: " + e.Type
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
