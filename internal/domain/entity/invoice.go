package entity

// InvoiceStatus estado de cobro de una factura.
type InvoiceStatus string

// Estados válidos de una factura.
const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// DateLayout formato con el que se guarda Invoice.Date (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Valid indica si s es uno de los estados conocidos.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice representa una fila de la tabla invoices.
// Amount siempre está en unidades menores (centavos) y nunca es negativo.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     InvoiceStatus
	Date       string
}

// InvoiceRow factura con los datos del cliente, tal como la muestra el listado.
type InvoiceRow struct {
	Invoice
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}
