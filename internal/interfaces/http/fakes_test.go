package http_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// memInvoices repositorio de facturas en memoria.
type memInvoices struct {
	mu   sync.Mutex
	rows map[string]*entity.Invoice
	err  error

	// onCount corre al inicio de CountFiltered, fuera del lock.
	onCount func()
}

func newMemInvoices() *memInvoices {
	return &memInvoices{rows: map[string]*entity.Invoice{}}
}

func (m *memInvoices) Create(_ context.Context, inv *entity.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	cp := *inv
	m.rows[inv.ID] = &cp
	return nil
}

func (m *memInvoices) Update(_ context.Context, inv *entity.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if cur, ok := m.rows[inv.ID]; ok {
		cur.CustomerID, cur.Amount, cur.Status = inv.CustomerID, inv.Amount, inv.Status
	}
	return nil
}

func (m *memInvoices) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.rows, id)
	return nil
}

func (m *memInvoices) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	inv, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (m *memInvoices) ListFiltered(_ context.Context, _ string, limit, offset int) ([]*entity.InvoiceRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]string, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := []*entity.InvoiceRow{}
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, &entity.InvoiceRow{Invoice: *m.rows[ids[i]]})
	}
	return out, nil
}

func (m *memInvoices) CountFiltered(_ context.Context, _ string) (int, error) {
	if m.onCount != nil {
		m.onCount()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), m.err
}

func (m *memInvoices) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *memInvoices) get(id string) *entity.Invoice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

func (m *memInvoices) first() *entity.Invoice {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inv := range m.rows {
		return inv
	}
	return nil
}

func (m *memInvoices) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

type memCustomers struct {
	customers []*entity.Customer
}

func (m *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCustomers) ListAll(_ context.Context) ([]*entity.Customer, error) {
	return m.customers, nil
}

type memDashboard struct{}

func (memDashboard) CardData(_ context.Context) (*entity.CardData, error) {
	return &entity.CardData{
		NumberOfInvoices:  2,
		NumberOfCustomers: 1,
		TotalPaid:         decimal.RequireFromString("157.95"),
		TotalPending:      decimal.Zero,
	}, nil
}

type memUsers struct {
	user *entity.User
	err  error
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user != nil && m.user.Email == email {
		return m.user, nil
	}
	return nil, nil
}
