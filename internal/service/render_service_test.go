package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"faktor/internal/domain"
	"faktor/internal/pdfgen"
	"faktor/internal/port"
	"faktor/internal/service"
	"faktor/mocks"
)

type renderFixture struct {
	invoiceRepo *mocks.MockInvoiceRepo
	companyRepo *mocks.MockCompanyInfoRepo
	images      *mocks.MockImageService
	sender      *mocks.MockEmailSender
	svc         service.RenderService
}

func newRenderFixture(t *testing.T) *renderFixture {
	t.Helper()
	renderer, err := pdfgen.NewRenderer(pdfgen.Config{})
	require.NoError(t, err)

	f := &renderFixture{
		invoiceRepo: new(mocks.MockInvoiceRepo),
		companyRepo: new(mocks.MockCompanyInfoRepo),
		images:      new(mocks.MockImageService),
		sender:      new(mocks.MockEmailSender),
	}
	f.svc = service.NewRenderService(f.invoiceRepo, f.companyRepo, f.images, renderer, f.sender)
	return f
}

func (f *renderFixture) noImages() {
	f.images.On("Get", mock.Anything, domain.ImageLogo).Return(nil, domain.ErrImageNotFound)
	f.images.On("Get", mock.Anything, domain.ImageSignature).Return(nil, domain.ErrImageNotFound)
}

func TestRenderService_RenderPDF(t *testing.T) {
	f := newRenderFixture(t)
	inv := sampleInvoice(*sampleCustomer())
	f.invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	f.companyRepo.On("Get", mock.Anything).Return(domain.DefaultCompanyInfo(), nil)
	f.noImages()

	pdf, filename, err := f.svc.RenderPDF(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "Invoice_INV-4321.pdf", filename)
}

func TestRenderService_RenderPDF_ImageErrorsDegrade(t *testing.T) {
	f := newRenderFixture(t)
	inv := sampleInvoice(*sampleCustomer())
	f.invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	f.companyRepo.On("Get", mock.Anything).Return(domain.DefaultCompanyInfo(), nil)
	// A broken storage backend must not fail the render.
	f.images.On("Get", mock.Anything, domain.ImageLogo).Return(nil, assert.AnError)
	f.images.On("Get", mock.Anything, domain.ImageSignature).Return(nil, assert.AnError)

	pdf, _, err := f.svc.RenderPDF(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestRenderService_RenderPDF_InvoiceNotFound(t *testing.T) {
	f := newRenderFixture(t)
	inv := sampleInvoice(*sampleCustomer())
	f.invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(nil, domain.ErrNotFound)

	_, _, err := f.svc.RenderPDF(context.Background(), inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenderService_SendInvoice(t *testing.T) {
	f := newRenderFixture(t)
	inv := sampleInvoice(*sampleCustomer())
	inv.Status = domain.InvoiceStatusDraft
	f.invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	f.companyRepo.On("Get", mock.Anything).Return(domain.DefaultCompanyInfo(), nil)
	f.noImages()

	f.sender.On("SendInvoice", mock.Anything, mock.MatchedBy(func(e port.InvoiceEmail) bool {
		return e.To == "ali@example.com" &&
			e.InvoiceNumber == "INV-4321" &&
			e.PDFFileName == "Invoice_INV-4321.pdf" &&
			len(e.PDF) > 0
	})).Return(nil)
	f.invoiceRepo.On("Update", mock.Anything, mock.MatchedBy(func(got *domain.Invoice) bool {
		return got.Status == domain.InvoiceStatusSent
	})).Return(nil)

	require.NoError(t, f.svc.SendInvoice(context.Background(), inv.ID))
	f.sender.AssertExpectations(t)
	f.invoiceRepo.AssertExpectations(t)
}

func TestRenderService_SendInvoice_AlreadySentKeepsStatus(t *testing.T) {
	f := newRenderFixture(t)
	inv := sampleInvoice(*sampleCustomer())
	inv.Status = domain.InvoiceStatusPaid
	f.invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	f.companyRepo.On("Get", mock.Anything).Return(domain.DefaultCompanyInfo(), nil)
	f.noImages()
	f.sender.On("SendInvoice", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.svc.SendInvoice(context.Background(), inv.ID))
	f.invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRenderService_SendInvoice_MissingEmail(t *testing.T) {
	f := newRenderFixture(t)
	inv := sampleInvoice(*sampleCustomer())
	inv.Customer.Email = "   "
	f.invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)

	err := f.svc.SendInvoice(context.Background(), inv.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerMissingEmail)
	f.sender.AssertNotCalled(t, "SendInvoice", mock.Anything, mock.Anything)
}

func TestRenderService_SendInvoice_SenderFailure(t *testing.T) {
	f := newRenderFixture(t)
	inv := sampleInvoice(*sampleCustomer())
	f.invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	f.companyRepo.On("Get", mock.Anything).Return(domain.DefaultCompanyInfo(), nil)
	f.noImages()
	f.sender.On("SendInvoice", mock.Anything, mock.Anything).Return(assert.AnError)

	err := f.svc.SendInvoice(context.Background(), inv.ID)
	assert.ErrorIs(t, err, assert.AnError)
	f.invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
