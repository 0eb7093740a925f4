package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
)

// writeOutcome traduce el resultado de una acción a HTTP:
//   - Redirect                 → 303 + Location.
//   - State con errores        → 422 con el State.
//   - State con error de DB    → 500 con el State.
//   - cualquier otro State     → 200 con el State.
func writeOutcome(c *fiber.Ctx, out dto.Outcome) error {
	switch o := out.(type) {
	case dto.Redirect:
		return c.Redirect(o.To, fiber.StatusSeeOther)
	case dto.State:
		status := fiber.StatusOK
		switch {
		case len(o.Errors) > 0:
			status = fiber.StatusUnprocessableEntity
		case isDatabaseError(o.Message):
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(o)
	default:
		return fiber.ErrInternalServerError
	}
}

func isDatabaseError(msg string) bool {
	switch msg {
	case billing.MsgCreateDBError, billing.MsgUpdateDBError, billing.MsgDeleteDBError:
		return true
	}
	return false
}
