package pdfgen

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"faktor/internal/domain"
)

const utf8FontFamily = "Vazirmatn"

// Fixed document metadata date. The page content never embeds wall-clock
// time, and pinning the PDF creation date keeps re-renders of the same
// snapshot byte-identical.
var fixedDocDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config selects the embedded fonts. FontPath points at a UTF-8 TTF with
// Persian glyph coverage (the app ships Vazirmatn); BoldFontPath is
// optional and falls back to the regular face. With no font configured the
// renderer falls back to the built-in Helvetica, which keeps the geometry
// exercisable without shaping Persian glyphs.
type Config struct {
	FontPath     string
	BoldFontPath string
}

// RenderOptions carries the optional raster images, each independently
// present or absent. Bytes are PNG-encoded.
type RenderOptions struct {
	Logo      []byte
	Signature []byte
}

// Renderer produces single-page A4 invoice documents. It is stateless
// across calls and safe for concurrent use; each render works on its own
// encoder over an immutable input snapshot.
type Renderer struct {
	fontRegular []byte
	fontBold    []byte
}

// NewRenderer loads the configured fonts once. A missing configured font
// file is a construction error; an empty path selects the core-font
// fallback.
func NewRenderer(cfg Config) (*Renderer, error) {
	r := &Renderer{}
	if cfg.FontPath != "" {
		data, err := os.ReadFile(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("loading PDF font: %w", err)
		}
		r.fontRegular = data
		r.fontBold = data
	}
	if cfg.BoldFontPath != "" {
		data, err := os.ReadFile(cfg.BoldFontPath)
		if err != nil {
			return nil, fmt.Errorf("loading PDF bold font: %w", err)
		}
		r.fontBold = data
	}
	return r, nil
}

// Render lays out the invoice and returns the PDF bytes for exactly one
// A4 page. Missing optional inputs (images, empty optional strings) skip
// their sections; only encoder failure is an error. Inputs are read-only
// and are not validated: out-of-range values render as-is.
func (r *Renderer) Render(inv *domain.Invoice, company *domain.CompanyInfo, opts RenderOptions) ([]byte, error) {
	p := buildPlan(inv, company, len(opts.Logo) > 0, len(opts.Signature) > 0)

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle("فاکتور "+inv.InvoiceNumber, true)
	pdf.SetCreationDate(fixedDocDate)
	pdf.SetModificationDate(fixedDocDate)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	family := "Helvetica"
	if len(r.fontRegular) > 0 {
		family = utf8FontFamily
		pdf.AddUTF8FontFromBytes(utf8FontFamily, "", r.fontRegular)
		pdf.AddUTF8FontFromBytes(utf8FontFamily, "B", r.fontBold)
	}

	pdf.AddPage()

	imgOpt := gofpdf.ImageOptions{ImageType: "PNG"}
	if len(opts.Logo) > 0 {
		pdf.RegisterImageOptionsReader("logo", imgOpt, bytes.NewReader(opts.Logo))
	}
	if len(opts.Signature) > 0 {
		pdf.RegisterImageOptionsReader("signature", imgOpt, bytes.NewReader(opts.Signature))
	}

	for _, o := range p.Ops {
		switch v := o.(type) {
		case boxOp:
			drawBox(pdf, v)
		case lineOp:
			pdf.SetDrawColor(v.Color.R, v.Color.G, v.Color.B)
			pdf.SetLineWidth(v.Width)
			pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
		case imageOp:
			pdf.ImageOptions(v.Name, v.Rect.X, v.Rect.Y, v.Rect.W, v.Rect.H, false, imgOpt, 0, "")
		case textOp:
			drawText(pdf, family, v)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalizing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBox(pdf *gofpdf.Fpdf, b boxOp) {
	style := "D"
	if b.Fill != nil {
		pdf.SetFillColor(b.Fill.R, b.Fill.G, b.Fill.B)
		style = "FD"
	}
	pdf.SetDrawColor(b.Stroke.R, b.Stroke.G, b.Stroke.B)
	pdf.SetLineWidth(b.LineWidth)
	if b.Radius > 0 {
		pdf.RoundedRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, b.Radius, "1234", style)
		return
	}
	pdf.Rect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, style)
}

func drawText(pdf *gofpdf.Fpdf, family string, t textOp) {
	style := ""
	if t.Font.Bold {
		style = "B"
	}
	pdf.SetFont(family, style, t.Font.Size)
	pdf.SetTextColor(t.Color.R, t.Color.G, t.Color.B)

	// Paragraph direction is a property of the run, not of the section:
	// RTL shaping is forced for Persian content regardless of alignment,
	// LTR only for inherently left-to-right values.
	if t.Dir == dirRTL {
		pdf.RTL()
	} else {
		pdf.LTR()
	}
	defer pdf.LTR()

	var alignStr string
	switch t.Align {
	case alignCenter:
		alignStr = "CM"
	case alignLeft:
		alignStr = "LM"
	default:
		alignStr = "RM"
	}

	pdf.SetXY(t.Rect.X, t.Rect.Y)
	pdf.CellFormat(t.Rect.W, t.Rect.H, t.Text, "", 0, alignStr, false, 0, "")
}
