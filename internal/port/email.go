package port

import "context"

// InvoiceEmail carries a rendered invoice for delivery to the customer.
type InvoiceEmail struct {
	To            string
	ToName        string
	InvoiceNumber string
	PDF           []byte
	PDFFileName   string
}

// EmailSender defines the contract for sending an invoice to its customer.
type EmailSender interface {
	SendInvoice(ctx context.Context, email InvoiceEmail) error
}
