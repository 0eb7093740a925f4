package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/pkg/jwt"
)

// SessionCookie nombre de la cookie con el token de sesión.
const SessionCookie = "session"

// Locals keys para los datos de sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// AuthMiddleware valida el token de sesión (cookie "session" o Bearer) y carga UserID y Email en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := sessionToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// sessionToken la cookie tiene prioridad sobre el header Authorization.
// ok=false si el header viene con un formato distinto de "Bearer <token>".
func sessionToken(c *fiber.Ctx) (string, bool) {
	if v := strings.TrimSpace(c.Cookies(SessionCookie)); v != "" {
		return v, true
	}
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", true
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetEmail devuelve el email del usuario en sesión.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}
