package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/cache"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

// HeaderCache indica si el listado salió de la caché ("HIT") o de la base ("MISS").
const HeaderCache = "X-Cache"

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
type InvoiceHandler struct {
	actions *billing.InvoiceActions
	query   *billing.QueryUseCase
	pdf     *billing.PDFUseCase
	views   *cache.PathCache
	log     *logger.Logger
}

// NewInvoiceHandler construye el handler. views y log pueden ser nil.
func NewInvoiceHandler(
	actions *billing.InvoiceActions,
	query *billing.QueryUseCase,
	pdf *billing.PDFUseCase,
	views *cache.PathCache,
	log *logger.Logger,
) *InvoiceHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceHandler{actions: actions, query: query, pdf: pdf, views: views, log: log}
}

// List godoc
// @Summary      Listado paginado de facturas
// @Tags         invoices
// @Produce      json
// @Param        query  query  string  false  "filtro por cliente, monto, fecha o estado"
// @Param        page   query  int     false  "página (desde 1)"
// @Success      200    {object}  dto.InvoiceListResponse
// @Router       /dashboard/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	key := viewKey(c)
	var gen uint64
	if h.views != nil {
		if body, ok := h.views.Get(key); ok {
			c.Set(HeaderCache, "HIT")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(body)
		}
		gen = h.views.Generation()
	}

	var in dto.PageRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.query.ListInvoices(c.UserContext(), in)
	if err != nil {
		return h.internal(c, "listar facturas", err)
	}
	body, err := json.Marshal(out)
	if err != nil {
		return h.internal(c, "serializar listado", err)
	}
	if h.views != nil {
		h.views.SetIfGeneration(key, body, gen)
	}
	c.Set(HeaderCache, "MISS")
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.InvoiceForm  true  "customerId, amount, status"
// @Success      303
// @Failure      422   {object}  dto.State
// @Failure      500   {object}  dto.State
// @Router       /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return writeOutcome(c, h.actions.CreateInvoice(c.UserContext(), dto.State{}, in))
}

// GetByID datos para el formulario de edición.
// GET /dashboard/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return h.internal(c, "obtener factura", err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar factura
// @Tags         invoices
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        id    path  string           true  "id de la factura"
// @Param        body  body  dto.InvoiceForm  true  "customerId, amount, status"
// @Success      303
// @Failure      422   {object}  dto.State
// @Failure      500   {object}  dto.State
// @Router       /dashboard/invoices/{id} [post]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.InvoiceForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return writeOutcome(c, h.actions.UpdateInvoice(c.UserContext(), c.Params("id"), dto.State{}, in))
}

// Delete elimina la factura. Un id inexistente también responde "Deleted Invoice.".
// POST /dashboard/invoices/:id/delete
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	return writeOutcome(c, h.actions.DeleteInvoice(c.UserContext(), c.Params("id")))
}

// PDF descarga el comprobante de la factura.
// GET /dashboard/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return h.internal(c, "generar pdf", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// viewKey URI normalizada del listado: sin "/" final, con la query string tal cual llegó.
func viewKey(c *fiber.Ctx) string {
	// c.Path() apunta al buffer de fasthttp, que se reutiliza entre peticiones.
	key := strings.Clone(strings.TrimSuffix(c.Path(), "/"))
	if qs := c.Request().URI().QueryString(); len(qs) > 0 {
		key += "?" + string(qs)
	}
	return key
}

// internal registra el error y responde 500 sin exponer el detalle.
func (h *InvoiceHandler) internal(c *fiber.Ctx, op string, err error) error {
	h.log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("error en lectura de facturas")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
