package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"faktor/internal/domain"
	"faktor/internal/pdfgen"
	"faktor/internal/port"
)

// RenderService produces invoice PDFs and delivers them to customers. It
// resolves the invoice, the company profile and the optional image slots,
// then hands everything to the renderer.
type RenderService interface {
	RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error)
	SendInvoice(ctx context.Context, id uuid.UUID) error
}

type renderService struct {
	invoiceRepo port.InvoiceRepository
	companyRepo port.CompanyInfoRepository
	images      ImageService
	renderer    *pdfgen.Renderer
	sender      port.EmailSender
}

// NewRenderService creates a new RenderService implementation.
func NewRenderService(
	invoiceRepo port.InvoiceRepository,
	companyRepo port.CompanyInfoRepository,
	images ImageService,
	renderer *pdfgen.Renderer,
	sender port.EmailSender,
) RenderService {
	return &renderService{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		images:      images,
		renderer:    renderer,
		sender:      sender,
	}
}

// RenderPDF renders the invoice and returns the PDF bytes with a suggested
// filename. A missing or unreadable image slot never fails the render; the
// section is simply omitted.
func (s *renderService) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("render.RenderPDF company: %w", err)
	}

	opts := pdfgen.RenderOptions{
		Logo:      s.loadImage(ctx, domain.ImageLogo),
		Signature: s.loadImage(ctx, domain.ImageSignature),
	}

	pdf, err := s.renderer.Render(inv, company, opts)
	if err != nil {
		log.Printf("rendering invoice %s: %v", inv.InvoiceNumber, err)
		return nil, "", domain.ErrRenderFailed
	}
	return pdf, pdfFileName(inv.InvoiceNumber), nil
}

// SendInvoice renders the invoice and emails it to the customer as a PDF
// attachment. A draft invoice is marked sent on success.
func (s *renderService) SendInvoice(ctx context.Context, id uuid.UUID) error {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(inv.Customer.Email) == "" {
		return domain.ErrCustomerMissingEmail
	}

	pdf, filename, err := s.RenderPDF(ctx, id)
	if err != nil {
		return err
	}

	err = s.sender.SendInvoice(ctx, port.InvoiceEmail{
		To:            inv.Customer.Email,
		ToName:        inv.Customer.Name,
		InvoiceNumber: inv.InvoiceNumber,
		PDF:           pdf,
		PDFFileName:   filename,
	})
	if err != nil {
		return fmt.Errorf("render.SendInvoice: %w", err)
	}

	if inv.Status == domain.InvoiceStatusDraft {
		inv.Status = domain.InvoiceStatusSent
		if err := s.invoiceRepo.Update(ctx, inv); err != nil {
			log.Printf("marking invoice %s sent: %v", inv.InvoiceNumber, err)
		}
	}
	return nil
}

func (s *renderService) loadImage(ctx context.Context, kind domain.ImageKind) []byte {
	data, err := s.images.Get(ctx, kind)
	if err != nil {
		if !errors.Is(err, domain.ErrImageNotFound) {
			log.Printf("loading %s image: %v", kind, err)
		}
		return nil
	}
	return data
}

func pdfFileName(invoiceNumber string) string {
	return fmt.Sprintf("Invoice_%s.pdf", invoiceNumber)
}
