package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// Nombres de campo del formulario de factura (claves de FieldErrors).
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// InvoiceForm envío crudo del formulario de factura (sin validar).
// Acepta application/x-www-form-urlencoded, multipart y JSON.
// Amount llega como texto y se coacciona a decimal en la validación.
type InvoiceForm struct {
	CustomerID string `form:"customerId" json:"customerId" validate:"required"`
	Amount     string `form:"amount" json:"amount" validate:"positive_amount"`
	Status     string `form:"status" json:"status" validate:"required,oneof=pending paid"`
}

// ValidatedInvoice datos del formulario ya validados y tipados.
// Amount sigue en unidades mayores; la conversión a centavos la hace la acción.
type ValidatedInvoice struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     entity.InvoiceStatus
}

// FieldErrors mapa campo -> mensajes legibles.
type FieldErrors map[string][]string

// Add agrega un mensaje al campo.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Outcome resultado de una acción: Redirect o State. Quien llama decide
// cómo interpretarlo (la capa HTTP responde 303 o JSON).
type Outcome interface {
	outcome()
}

// Redirect la acción terminó bien y el cliente debe ir a To.
type Redirect struct {
	To string `json:"to"`
}

// State resultado que vuelve al formulario. Sin Errors ni Message significa que no hay nada que mostrar.
type State struct {
	Errors  FieldErrors `json:"errors,omitempty"`
	Message string      `json:"message,omitempty"`
}

func (Redirect) outcome() {}
func (State) outcome()    {}

// CredentialsForm envío del formulario de login; se reenvía tal cual al proveedor de identidad.
type CredentialsForm struct {
	Email      string `form:"email" json:"email"`
	Password   string `form:"password" json:"password"`
	RedirectTo string `form:"redirectTo" json:"redirectTo,omitempty"`
}

// AuthenticateResponse cuerpo de POST /login cuando no hay redirección.
type AuthenticateResponse struct {
	Message string `json:"message"`
}
