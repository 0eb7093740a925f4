package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

// DashboardHandler tarjetas del dashboard y selector de clientes.
type DashboardHandler struct {
	uc  *billing.QueryUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *billing.QueryUseCase, log *logger.Logger) *DashboardHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardHandler{uc: uc, log: log}
}

// GetCards devuelve conteos y totales pagados/pendientes ya formateados.
// GET /dashboard
func (h *DashboardHandler) GetCards(c *fiber.Ctx) error {
	cards, err := h.uc.CardData(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("tarjetas del dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudieron cargar las tarjetas",
		})
	}
	return c.JSON(cards)
}

// ListCustomers opciones del selector de clientes del formulario de factura.
// GET /dashboard/customers
func (h *DashboardHandler) ListCustomers(c *fiber.Ctx) error {
	list, err := h.uc.ListCustomers(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("listar clientes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudieron cargar los clientes",
		})
	}
	return c.JSON(list)
}
