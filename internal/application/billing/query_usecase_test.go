package billing_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

func TestListInvoices_Paginacion(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.total = 13
	var gotQuery string
	var gotLimit, gotOffset int
	repo.listFn = func(query string, limit, offset int) []*entity.InvoiceRow {
		gotQuery, gotLimit, gotOffset = query, limit, offset
		return []*entity.InvoiceRow{{
			Invoice:      entity.Invoice{ID: "inv-1", CustomerID: "c1", Amount: 123456, Status: entity.InvoiceStatusPaid, Date: "2023-06-05"},
			CustomerName: "Lee Robinson",
		}}
	}
	uc := billing.NewQueryUseCase(repo, &fakeCustomerRepo{}, &fakeDashboardRepo{})

	out, err := uc.ListInvoices(context.Background(), dto.PageRequest{Query: "  lee ", Page: 2})
	require.NoError(t, err)

	assert.Equal(t, "lee", gotQuery)
	assert.Equal(t, dto.InvoicesPerPage, gotLimit)
	assert.Equal(t, 6, gotOffset)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 2, out.Page)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "$1,234.56", out.Items[0].AmountFormatted)
	assert.Equal(t, "paid", out.Items[0].Status)
}

func TestListInvoices_PaginaFueraDeRango_NoConsulta(t *testing.T) {
	for _, page := range []int{4, math.MaxInt, math.MaxInt/dto.InvoicesPerPage + 2} {
		repo := newFakeInvoiceRepo()
		repo.total = 13
		called := false
		repo.listFn = func(string, int, int) []*entity.InvoiceRow {
			called = true
			return nil
		}
		uc := billing.NewQueryUseCase(repo, &fakeCustomerRepo{}, &fakeDashboardRepo{})

		out, err := uc.ListInvoices(context.Background(), dto.PageRequest{Page: page})
		require.NoError(t, err)
		assert.False(t, called, "página %d no debe llegar a la base", page)
		assert.Empty(t, out.Items)
		assert.NotNil(t, out.Items)
		assert.Equal(t, 3, out.TotalPages)
	}
}

func TestListInvoices_PaginaPorDefecto(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := billing.NewQueryUseCase(repo, &fakeCustomerRepo{}, &fakeDashboardRepo{})

	out, err := uc.ListInvoices(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 0, out.TotalPages)
	assert.NotNil(t, out.Items)
}

func TestListInvoices_ErrorDeDB(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.err = errors.New("boom")
	uc := billing.NewQueryUseCase(repo, &fakeCustomerRepo{}, &fakeDashboardRepo{})

	_, err := uc.ListInvoices(context.Background(), dto.PageRequest{})
	assert.Error(t, err)
}

func TestGetInvoice(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.rows["inv-1"] = &entity.Invoice{ID: "inv-1", CustomerID: "c1", Amount: 13370, Status: entity.InvoiceStatusPending, Date: "2022-12-06"}
	uc := billing.NewQueryUseCase(repo, &fakeCustomerRepo{}, &fakeDashboardRepo{})

	out, err := uc.GetInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "133.70", out.Amount.StringFixed(2))
	assert.Equal(t, "pending", out.Status)

	_, err = uc.GetInvoice(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCustomers(t *testing.T) {
	customers := &fakeCustomerRepo{customers: []*entity.Customer{{ID: "c1", Name: "Amy Burns"}, {ID: "c2", Name: "Balazs Orban"}}}
	uc := billing.NewQueryUseCase(newFakeInvoiceRepo(), customers, &fakeDashboardRepo{})

	out, err := uc.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.CustomerOption{{ID: "c1", Name: "Amy Burns"}, {ID: "c2", Name: "Balazs Orban"}}, out)
}

func TestCardData(t *testing.T) {
	dash := &fakeDashboardRepo{data: &entity.CardData{
		NumberOfInvoices:  13,
		NumberOfCustomers: 6,
		TotalPaid:         decimal.RequireFromString("3456.78"),
		TotalPending:      decimal.RequireFromString("0.5"),
	}}
	uc := billing.NewQueryUseCase(newFakeInvoiceRepo(), &fakeCustomerRepo{}, dash)

	out, err := uc.CardData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 13, out.NumberOfInvoices)
	assert.Equal(t, "$3,456.78", out.TotalPaid)
	assert.Equal(t, "$0.50", out.TotalPending)
}

type fakePDF struct {
	gotInvoice  *entity.Invoice
	gotCustomer *entity.Customer
}

func (f *fakePDF) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, c *entity.Customer) ([]byte, error) {
	f.gotInvoice, f.gotCustomer = inv, c
	return []byte("%PDF-1.3"), nil
}

func TestDownloadInvoicePDF(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.rows["inv-1"] = &entity.Invoice{ID: "inv-1", CustomerID: "c1", Amount: 100}
	customers := &fakeCustomerRepo{customers: []*entity.Customer{{ID: "c1", Name: "Amy Burns"}}}
	gen := &fakePDF{}
	uc := billing.NewPDFUseCase(repo, customers, gen)

	pdf, name, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "invoice-inv-1.pdf", name)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.Equal(t, "Amy Burns", gen.gotCustomer.Name)

	_, _, err = uc.DownloadInvoicePDF(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
