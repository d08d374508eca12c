package noop

import (
	"context"
	"log"

	"faktor/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs outgoing invoices to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoice(_ context.Context, msg port.InvoiceEmail) error {
	log.Printf("[NOOP EMAIL] Invoice %s for %s (%s): attachment %s (%d bytes)",
		msg.InvoiceNumber, msg.ToName, msg.To, msg.PDFFileName, len(msg.PDF))
	return nil
}
