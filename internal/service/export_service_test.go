package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"faktor/internal/domain"
	"faktor/internal/service"
	"faktor/mocks"
)

func TestExportService_ExportCSV(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := service.NewExportService(repo)

	invoices := []domain.Invoice{*sampleInvoice(*sampleCustomer())}
	// Exports fetch the full result set in one unpaginated query.
	repo.On("List", mock.Anything, "", domain.SortDateNewest, 0, 0).
		Return(invoices, len(invoices), nil)

	data, filename, err := svc.ExportCSV(context.Background(), "", "")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(data), "Invoice Number")
	assert.Contains(t, string(data), "INV-4321")
	assert.Regexp(t, `^invoices_\d{4}-\d{2}-\d{2}\.csv$`, filename)
	repo.AssertExpectations(t)
}

func TestExportService_ExportCSV_PassesQueryAndSort(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := service.NewExportService(repo)

	repo.On("List", mock.Anything, "رضایی", domain.SortTotalAmount, 0, 0).
		Return([]domain.Invoice{}, 0, nil)

	_, _, err := svc.ExportCSV(context.Background(), "رضایی", domain.SortTotalAmount)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestExportService_ExportXLSX(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := service.NewExportService(repo)

	repo.On("List", mock.Anything, "", domain.SortDateNewest, 0, 0).
		Return([]domain.Invoice{*sampleInvoice(*sampleCustomer())}, 1, nil)

	data, filename, err := svc.ExportXLSX(context.Background(), "", "")
	require.NoError(t, err)
	// XLSX is a ZIP container.
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
	assert.Regexp(t, `^invoices_\d{4}-\d{2}-\d{2}\.xlsx$`, filename)
}

func TestExportService_ListFailure(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := service.NewExportService(repo)

	repo.On("List", mock.Anything, "", domain.SortDateNewest, 0, 0).
		Return(nil, 0, assert.AnError)

	_, _, err := svc.ExportCSV(context.Background(), "", "")
	assert.ErrorIs(t, err, assert.AnError)
}
