package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware configura CORS a partir del origen configurado (por defecto *).
// Con un origen explícito se permiten credenciales para que viaje la cookie de sesión.
func CorsMiddleware(origin string) fiber.Handler {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		origin = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowCredentials: origin != "*",
	})
}
