package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CardData cuenta facturas y clientes y suma montos pagados/pendientes.
// Las sumas salen como NUMERIC en unidades mayores y se escanean a decimal.Decimal
// gracias al codec registrado en NewPool.
func (r *DashboardRepo) CardData(ctx context.Context) (*entity.CardData, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM invoices)                                              AS invoice_count,
	    (SELECT COUNT(*) FROM customers)                                             AS customer_count,
	    (SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0) / 100.0
	       FROM invoices)                                                            AS total_paid,
	    (SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0) / 100.0
	       FROM invoices)                                                            AS total_pending`
	var d entity.CardData
	err := r.q.QueryRow(ctx, query).Scan(
		&d.NumberOfInvoices, &d.NumberOfCustomers, &d.TotalPaid, &d.TotalPending,
	)
	if err != nil {
		return nil, fmt.Errorf("card data: %w", err)
	}
	return &d, nil
}
