package dto

import "github.com/shopspring/decimal"

// InvoicesPerPage tamaño de página del listado de facturas.
const InvoicesPerPage = 6

// InvoiceListItem fila del listado /dashboard/invoices.
type InvoiceListItem struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ImageURL        string `json:"image_url"`
	Amount          int64  `json:"amount"`           // centavos
	AmountFormatted string `json:"amount_formatted"` // "$1,234.56"
	Status          string `json:"status"`
	Date            string `json:"date"`
}

// InvoiceListResponse página del listado.
type InvoiceListResponse struct {
	Items      []InvoiceListItem `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Query      string            `json:"query,omitempty"`
}

// InvoiceFormResponse datos para precargar el formulario de edición.
// Amount viene en unidades mayores, como lo escribe el usuario.
type InvoiceFormResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Date       string          `json:"date"`
}

// CustomerOption opción del selector de clientes.
type CustomerOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CardDataResponse tarjetas del dashboard.
type CardDataResponse struct {
	NumberOfInvoices  int    `json:"number_of_invoices"`
	NumberOfCustomers int    `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid_invoices"`
	TotalPending      string `json:"total_pending_invoices"`
}
