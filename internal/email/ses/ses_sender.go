package ses

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"faktor/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

// SendInvoice delivers the rendered invoice as a PDF attachment. SES simple
// content has no attachment support, so the message is built as raw MIME.
func (s *sesSender) SendInvoice(ctx context.Context, msg port.InvoiceEmail) error {
	raw, err := s.buildRawMessage(msg)
	if err != nil {
		return fmt.Errorf("building invoice email: %w", err)
	}

	_, err = s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func (s *sesSender) buildRawMessage(msg port.InvoiceEmail) ([]byte, error) {
	subject := fmt.Sprintf("پیش فاکتور شماره %s", msg.InvoiceNumber)
	textBody := fmt.Sprintf("%s عزیز،\n\nپیش فاکتور شماره %s به پیوست این ایمیل ارسال شده است.\n\nبا تشکر", msg.ToName, msg.InvoiceNumber)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", s.fromName), s.fromAddress)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", w.Boundary())

	textPart, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"text/plain; charset=utf-8"},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return nil, fmt.Errorf("create text part: %w", err)
	}
	if _, err := textPart.Write([]byte(base64.StdEncoding.EncodeToString([]byte(textBody)))); err != nil {
		return nil, fmt.Errorf("write text part: %w", err)
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": msg.PDFFileName})
	pdfPart, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"application/pdf"},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {disposition},
	})
	if err != nil {
		return nil, fmt.Errorf("create attachment part: %w", err)
	}
	if _, err := pdfPart.Write([]byte(base64.StdEncoding.EncodeToString(msg.PDF))); err != nil {
		return nil, fmt.Errorf("write attachment part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close MIME writer: %w", err)
	}
	return buf.Bytes(), nil
}
