package billing

import (
	"context"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// InvoicesPath ruta del listado de facturas: se invalida tras cada mutación y es
// el destino de la redirección de crear/editar.
const InvoicesPath = "/dashboard/invoices"

// PathRevalidator marca como obsoleta la vista cacheada de una ruta.
type PathRevalidator interface {
	Revalidate(path string)
}

// InvoicePDFGenerator genera la representación PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
