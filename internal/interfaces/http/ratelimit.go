package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
)

// RateLimitLogin limita POST /login a maxPerMinute intentos por minuto por IP.
func RateLimitLogin(maxPerMinute int) fiber.Handler {
	if maxPerMinute <= 0 {
		maxPerMinute = 10
	}
	return limiter.New(limiter.Config{
		Max:        maxPerMinute,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "TOO_MANY_REQUESTS", Message: "demasiados intentos, espere un minuto"})
		},
	})
}
