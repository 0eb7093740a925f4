package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/postgres"
)

const (
	testInvoiceID  = "cc27c14a-0acf-4f4a-a6c9-d45682c144b9"
	testCustomerID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestInvoiceRepo_Create_UsaParametros(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO invoices (id, customer_id, amount, status, date)")).
		WithArgs(testInvoiceID, testCustomerID, int64(13370), "pending", "2026-10-18").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &entity.Invoice{
		ID:         testInvoiceID,
		CustomerID: testCustomerID,
		Amount:     13370,
		Status:     entity.InvoiceStatusPending,
		Date:       "2026-10-18",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_Create_IDDuplicado(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	mock.ExpectExec("INSERT INTO invoices").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &entity.Invoice{ID: testInvoiceID, Status: entity.InvoiceStatusPaid})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_Update_NoTocaFecha(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("SET customer_id = $2, amount = $3, status = $4")).
		WithArgs(testInvoiceID, testCustomerID, int64(500), "paid").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	// UPDATE 0: id inexistente, no es error.
	err := repo.Update(context.Background(), &entity.Invoice{
		ID:         testInvoiceID,
		CustomerID: testCustomerID,
		Amount:     500,
		Status:     entity.InvoiceStatusPaid,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_Delete(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM invoices WHERE id = $1")).
		WithArgs(testInvoiceID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), testInvoiceID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_Delete_ErrorDeDB(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	mock.ExpectExec("DELETE FROM invoices").WillReturnError(errors.New("connection reset"))

	err := repo.Delete(context.Background(), testInvoiceID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete invoice")
}

func TestInvoiceRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
		AddRow(testInvoiceID, testCustomerID, int64(15795), "pending", "2022-12-06")
	mock.ExpectQuery("FROM invoices WHERE id = ").WithArgs(testInvoiceID).WillReturnRows(rows)

	inv, err := repo.GetByID(context.Background(), testInvoiceID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, int64(15795), inv.Amount)
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	assert.Equal(t, "2022-12-06", inv.Date)
}

func TestInvoiceRepo_GetByID_NoExiste(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	mock.ExpectQuery("FROM invoices WHERE id = ").WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	inv, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, inv)
}

func TestInvoiceRepo_ListFiltered(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "customer_id", "amount", "status", "date", "name", "email", "image_url"}).
		AddRow(testInvoiceID, testCustomerID, int64(20348), "pending", "2022-11-14", "Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png")
	mock.ExpectQuery("JOIN customers").
		WithArgs("%delba%", 6, 6).
		WillReturnRows(rows)

	list, err := repo.ListFiltered(context.Background(), "delba", 6, 6)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Delba de Oliveira", list[0].CustomerName)
	assert.Equal(t, entity.InvoiceStatusPending, list[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_CountFiltered(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("%%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(13))

	n, err := repo.CountFiltered(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 13, n)
}
