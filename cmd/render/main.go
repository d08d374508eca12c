// Command render produces an invoice PDF offline from JSON input files,
// without a database or object store.
//
// Usage: render -invoice invoice.json [-company company.json] [-logo logo.png]
// [-signature sig.png] [-o out.pdf]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"faktor/internal/domain"
	"faktor/internal/pdfgen"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	invoicePath := flag.String("invoice", "", "path to invoice JSON (required)")
	companyPath := flag.String("company", "", "path to company profile JSON (defaults when omitted)")
	logoPath := flag.String("logo", "", "path to logo PNG")
	signaturePath := flag.String("signature", "", "path to signature PNG")
	fontPath := flag.String("font", "", "path to a UTF-8 TTF with Persian coverage")
	boldFontPath := flag.String("bold-font", "", "path to the bold variant TTF")
	outPath := flag.String("o", "invoice.pdf", "output PDF path")
	flag.Parse()

	if *invoicePath == "" {
		flag.Usage()
		return fmt.Errorf("-invoice is required")
	}

	var inv domain.Invoice
	if err := readJSON(*invoicePath, &inv); err != nil {
		return fmt.Errorf("reading invoice: %w", err)
	}

	company := domain.DefaultCompanyInfo()
	if *companyPath != "" {
		if err := readJSON(*companyPath, company); err != nil {
			return fmt.Errorf("reading company profile: %w", err)
		}
	}

	opts := pdfgen.RenderOptions{}
	if *logoPath != "" {
		data, err := os.ReadFile(*logoPath)
		if err != nil {
			return fmt.Errorf("reading logo: %w", err)
		}
		opts.Logo = data
	}
	if *signaturePath != "" {
		data, err := os.ReadFile(*signaturePath)
		if err != nil {
			return fmt.Errorf("reading signature: %w", err)
		}
		opts.Signature = data
	}

	renderer, err := pdfgen.NewRenderer(pdfgen.Config{
		FontPath:     *fontPath,
		BoldFontPath: *boldFontPath,
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	pdf, err := renderer.Render(&inv, company, opts)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if err := os.WriteFile(*outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Printf("wrote %s (%d bytes)", *outPath, len(pdf))
	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
