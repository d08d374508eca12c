package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"faktor/internal/domain"
	"faktor/internal/format"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Invoice Number",
	"Date",
	"Date (Jalali)",
	"Status",
	"Customer Name",
	"Customer Phone",
	"Customer Email",
	"Customer City",
	"Line Item Count",
	"Subtotal",
	"Discount Rate",
	"Discount Amount",
	"Tax Rate",
	"Tax Amount",
	"Total",
	"Currency",
	"Account Number",
	"Notes",
	"Created At",
}

// CSVWriter wraps csv.Writer for exporting invoices as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of invoices to CSV rows and writes them.
func (w *CSVWriter) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceToRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// invoiceToRow converts a single invoice to a string slice matching columns.
// Amounts use Latin digits so the file stays machine-readable; the Jalali
// date column keeps the Persian rendering for operators.
func invoiceToRow(inv *domain.Invoice) []string {
	row := make([]string, len(columns))

	row[0] = inv.InvoiceNumber
	row[1] = inv.Date.Format("2006-01-02")
	row[2] = format.ToLatinDigits(format.JalaliDateShort(inv.Date))
	row[3] = string(inv.Status)
	row[4] = inv.Customer.Name
	row[5] = inv.Customer.Phone
	row[6] = inv.Customer.Email
	row[7] = inv.Customer.City
	row[8] = strconv.Itoa(len(inv.Items))
	row[9] = formatMoney(inv.Subtotal())
	row[10] = formatRate(inv.DiscountRate)
	row[11] = formatMoney(inv.DiscountAmount())
	row[12] = formatRate(inv.TaxRate)
	row[13] = formatMoney(inv.TaxAmount())
	row[14] = formatMoney(inv.Total())
	row[15] = string(inv.Currency)
	row[16] = inv.AccountNumber
	row[17] = inv.Notes
	row[18] = inv.CreatedAt.Format(time.RFC3339)

	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), time.Now().Format("2006-01-02"), ext)
}
