// Package validation aplica el esquema del formulario de factura: campos requeridos,
// coerción del monto y valores permitidos. Devuelve datos tipados o un mapa de errores
// por campo, nunca ambos.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/money"
)

// Mensajes por campo que ve el usuario.
const (
	MsgCustomerID = "Please select a customer."
	MsgAmount     = "Please enter an amount greater than $0."
	MsgStatus     = "Please select an invoice status."
)

var fieldMessages = map[string]string{
	dto.FieldCustomerID: MsgCustomerID,
	dto.FieldAmount:     MsgAmount,
	dto.FieldStatus:     MsgStatus,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores se reportan con el nombre del campo del formulario (customerId, amount, status).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		d, err := parseAmount(fl.Field().String())
		if err != nil {
			return false
		}
		// Positivo después de llevarlo a centavos: 0.001 redondea a 0 y no pasa.
		minor, err := money.ToMinorUnits(d)
		return err == nil && minor >= 1
	})
	return v
}

// ParseInvoiceForm valida el formulario completo. Si hay cualquier error devuelve
// (nil, errores); si no, (datos, nil). No hay éxito parcial.
func ParseInvoiceForm(form dto.InvoiceForm) (*dto.ValidatedInvoice, dto.FieldErrors) {
	if err := validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			// InvalidValidationError: solo si el esquema mismo está mal armado.
			return nil, dto.FieldErrors{"form": {err.Error()}}
		}
		fieldErrs := dto.FieldErrors{}
		for _, fe := range verrs {
			msg, ok := fieldMessages[fe.Field()]
			if !ok {
				msg = "Invalid value."
			}
			fieldErrs.Add(fe.Field(), msg)
		}
		return nil, fieldErrs
	}

	amount, err := parseAmount(form.Amount)
	if err != nil {
		return nil, dto.FieldErrors{dto.FieldAmount: {MsgAmount}}
	}
	return &dto.ValidatedInvoice{
		CustomerID: form.CustomerID,
		Amount:     amount,
		Status:     entity.InvoiceStatus(form.Status),
	}, nil
}

// maxAmountLen largo máximo del texto del monto.
const maxAmountLen = 32

// parseAmount coacciona el texto del formulario a decimal. Vacío, notación
// científica o textos demasiado largos son error.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return decimal.Zero, errors.New("monto vacío")
	case len(s) > maxAmountLen:
		return decimal.Zero, errors.New("monto demasiado largo")
	case strings.ContainsAny(s, "eE"):
		return decimal.Zero, errors.New("notación científica no permitida")
	}
	return decimal.NewFromString(s)
}
