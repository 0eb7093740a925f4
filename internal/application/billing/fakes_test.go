package billing_test

import (
	"context"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// fakeInvoiceRepo guarda facturas en memoria y registra cuántas sentencias se ejecutaron.
type fakeInvoiceRepo struct {
	rows   map[string]*entity.Invoice
	execs  int
	err    error
	listFn func(query string, limit, offset int) []*entity.InvoiceRow
	total  int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{rows: map[string]*entity.Invoice{}}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.execs++
	if f.err != nil {
		return f.err
	}
	cp := *inv
	f.rows[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	f.execs++
	if f.err != nil {
		return f.err
	}
	if cur, ok := f.rows[inv.ID]; ok {
		cur.CustomerID = inv.CustomerID
		cur.Amount = inv.Amount
		cur.Status = inv.Status
	}
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	f.execs++
	if f.err != nil {
		return f.err
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	inv, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, query string, limit, offset int) ([]*entity.InvoiceRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(query, limit, offset), nil
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, _ string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.total, nil
}

type fakeRevalidator struct {
	paths []string
}

func (f *fakeRevalidator) Revalidate(path string) {
	f.paths = append(f.paths, path)
}

type fakeCustomerRepo struct {
	customers []*entity.Customer
	err       error
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) ListAll(_ context.Context) ([]*entity.Customer, error) {
	return f.customers, f.err
}

type fakeDashboardRepo struct {
	data *entity.CardData
	err  error
}

func (f *fakeDashboardRepo) CardData(_ context.Context) (*entity.CardData, error) {
	return f.data, f.err
}
