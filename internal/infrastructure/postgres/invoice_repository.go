package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Todos los valores del usuario viajan como parámetros ($n), nunca concatenados.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create inserta una factura (una sola sentencia).
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	const query = `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert invoice: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update actualiza cliente, monto y estado. La fecha de emisión no cambia.
// Si ninguna fila coincide con el id no se reporta error.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	const query = `
		UPDATE invoices
		SET customer_id = $2, amount = $3, status = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status),
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina la factura por id. Si no existe no se reporta error.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por id; (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	const query = `
		SELECT id, customer_id, amount, status, to_char(date, 'YYYY-MM-DD')
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	var status string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.Status = entity.InvoiceStatus(status)
	return &inv, nil
}

// filterClause condición compartida por el listado y el conteo; $1 es el patrón ILIKE.
const filterClause = `
		WHERE customers.name ILIKE $1
		   OR customers.email ILIKE $1
		   OR invoices.amount::text ILIKE $1
		   OR invoices.date::text ILIKE $1
		   OR invoices.status ILIKE $1`

// ListFiltered página del listado con datos del cliente, más recientes primero.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]*entity.InvoiceRow, error) {
	sql := `
		SELECT invoices.id, invoices.customer_id, invoices.amount, invoices.status,
		       to_char(invoices.date, 'YYYY-MM-DD'),
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id` + filterClause + `
		ORDER BY invoices.date DESC, invoices.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceRow
	for rows.Next() {
		var row entity.InvoiceRow
		var status string
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.Amount, &status, &row.Date,
			&row.CustomerName, &row.CustomerEmail, &row.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		row.Status = entity.InvoiceStatus(status)
		list = append(list, &row)
	}
	return list, rows.Err()
}

// CountFiltered total de facturas que coinciden con el filtro.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id` + filterClause
	var n int
	if err := r.q.QueryRow(ctx, sql, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}
