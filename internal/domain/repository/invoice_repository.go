package repository

import (
	"context"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Cada mutación es una única sentencia SQL; no hay transacciones multi-sentencia.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update modifica customer_id, amount y status; la fecha no se toca.
	// Un id inexistente no es error (no-op silencioso).
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete elimina por id; un id inexistente no es error.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// ListFiltered devuelve una página del listado filtrado por texto libre.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceRow, error)
	CountFiltered(ctx context.Context, query string) (int, error)
}
