package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoices-dashboard/internal/application/auth"
	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
)

// DashboardPath destino por defecto después del login.
const DashboardPath = "/dashboard"

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	secureCookie bool
}

// NewAuthHandler construye el handler de auth. secureCookie marca la cookie de sesión como Secure.
func NewAuthHandler(uc *auth.AuthUseCase, secureCookie bool) *AuthHandler {
	return &AuthHandler{uc: uc, secureCookie: secureCookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.CredentialsForm  true  "email, password, redirectTo"
// @Success      303
// @Failure      401   {object}  dto.AuthenticateResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.CredentialsForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	msg, sess, err := h.uc.Authenticate(c.UserContext(), "", in)
	if err != nil {
		// No categorizado: lo responde el ErrorHandler de Fiber.
		return err
	}
	if msg != "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthenticateResponse{Message: msg})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(safeRedirect(in.RedirectTo), fiber.StatusSeeOther)
}

// Logout borra la cookie de sesión.
// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// safeRedirect solo acepta rutas locales; cualquier otra cosa va al dashboard.
func safeRedirect(to string) string {
	if !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") || strings.Contains(to, "\\") {
		return DashboardPath
	}
	return to
}
