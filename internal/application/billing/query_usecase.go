package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/money"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

// QueryUseCase lecturas del dashboard: listado, formulario de edición, clientes y tarjetas.
type QueryUseCase struct {
	invoiceRepo   repository.InvoiceRepository
	customerRepo  repository.CustomerRepository
	dashboardRepo repository.DashboardRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	dashboardRepo repository.DashboardRepository,
) *QueryUseCase {
	return &QueryUseCase{
		invoiceRepo:   invoiceRepo,
		customerRepo:  customerRepo,
		dashboardRepo: dashboardRepo,
	}
}

// ListInvoices devuelve la página solicitada del listado filtrado.
func (uc *QueryUseCase) ListInvoices(ctx context.Context, in dto.PageRequest) (*dto.InvoiceListResponse, error) {
	in.DefaultPage()
	query := strings.TrimSpace(in.Query)

	total, err := uc.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("contar facturas: %w", err)
	}
	pages := totalPages(total, dto.InvoicesPerPage)

	// Una página fuera de rango no consulta: el offset podría desbordar int.
	var rows []*entity.InvoiceRow
	if in.Page <= pages {
		offset := (in.Page - 1) * dto.InvoicesPerPage
		rows, err = uc.invoiceRepo.ListFiltered(ctx, query, dto.InvoicesPerPage, offset)
		if err != nil {
			return nil, fmt.Errorf("listar facturas: %w", err)
		}
	}

	items := make([]dto.InvoiceListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.InvoiceListItem{
			ID:              r.ID,
			CustomerID:      r.CustomerID,
			Name:            r.CustomerName,
			Email:           r.CustomerEmail,
			ImageURL:        r.ImageURL,
			Amount:          r.Amount,
			AmountFormatted: money.FormatCurrency(r.Amount),
			Status:          string(r.Status),
			Date:            r.Date,
		})
	}
	return &dto.InvoiceListResponse{
		Items:      items,
		Page:       in.Page,
		TotalPages: pages,
		Query:      query,
	}, nil
}

// GetInvoice devuelve los datos para el formulario de edición, con el monto en unidades mayores.
func (uc *QueryUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceFormResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceFormResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.FromMinorUnits(inv.Amount),
		Status:     string(inv.Status),
		Date:       inv.Date,
	}, nil
}

// ListCustomers opciones del selector de clientes, ordenadas por nombre.
func (uc *QueryUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerOption, error) {
	list, err := uc.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerOption, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerOption{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// CardData tarjetas del dashboard con los totales formateados.
func (uc *QueryUseCase) CardData(ctx context.Context) (*dto.CardDataResponse, error) {
	data, err := uc.dashboardRepo.CardData(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CardDataResponse{
		NumberOfInvoices:  data.NumberOfInvoices,
		NumberOfCustomers: data.NumberOfCustomers,
		TotalPaid:         formatTotal(data.TotalPaid),
		TotalPending:      formatTotal(data.TotalPending),
	}, nil
}

// formatTotal los totales del repositorio ya vienen en unidades mayores.
func formatTotal(d decimal.Decimal) string {
	return money.FormatCurrency(d.Shift(2).Round(0).IntPart())
}

func totalPages(total, perPage int) int {
	if total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
