package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

// PDFUseCase genera el PDF de una factura del dashboard.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF carga factura y cliente y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura o su cliente no existen.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, customer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice-%s.pdf", inv.ID), nil
}
