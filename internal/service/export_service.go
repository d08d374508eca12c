package service

import (
	"bytes"
	"context"
	"fmt"

	"faktor/internal/domain"
	"faktor/internal/export"
	"faktor/internal/port"
)

// ExportService produces tabular exports of the invoice book.
type ExportService interface {
	ExportCSV(ctx context.Context, query string, sort domain.InvoiceSortOption) ([]byte, string, error)
	ExportXLSX(ctx context.Context, query string, sort domain.InvoiceSortOption) ([]byte, string, error)
}

type exportService struct {
	invoiceRepo port.InvoiceRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(invoiceRepo port.InvoiceRepository) ExportService {
	return &exportService{invoiceRepo: invoiceRepo}
}

// ExportCSV writes all matching invoices as UTF-8 CSV with a BOM so Excel
// detects the encoding.
func (s *exportService) ExportCSV(ctx context.Context, query string, sort domain.InvoiceSortOption) ([]byte, string, error) {
	invoices, err := s.listAll(ctx, query, sort)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(export.BOM)

	w := export.NewCSVWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, "", fmt.Errorf("export.ExportCSV header: %w", err)
	}
	if err := w.WriteInvoices(invoices); err != nil {
		return nil, "", fmt.Errorf("export.ExportCSV rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("export.ExportCSV flush: %w", err)
	}

	return buf.Bytes(), export.BuildFilename("invoices", "csv"), nil
}

// ExportXLSX writes all matching invoices as a single-sheet workbook.
func (s *exportService) ExportXLSX(ctx context.Context, query string, sort domain.InvoiceSortOption) ([]byte, string, error) {
	invoices, err := s.listAll(ctx, query, sort)
	if err != nil {
		return nil, "", err
	}

	data, err := export.WriteXLSX(invoices)
	if err != nil {
		return nil, "", fmt.Errorf("export.ExportXLSX: %w", err)
	}
	return data, export.BuildFilename("invoices", "xlsx"), nil
}

func (s *exportService) listAll(ctx context.Context, query string, sort domain.InvoiceSortOption) ([]domain.Invoice, error) {
	if sort == "" {
		sort = domain.SortDateNewest
	}
	invoices, _, err := s.invoiceRepo.List(ctx, query, sort, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("export list: %w", err)
	}
	return invoices, nil
}
