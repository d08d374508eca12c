package pdfgen

import (
	"strings"

	"faktor/internal/domain"
	"faktor/internal/format"
)

// notEmpty reports whether s has any content after trimming whitespace.
// Optional fields are suppressed, not blanked, when this is false.
func notEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// joinParts joins the non-empty parts with sep. This is the ordered
// optional-field pattern shared by the seller and buyer blocks: each part is
// either a rendered "label value" string or empty, and empty parts vanish
// without leaving separators behind.
func joinParts(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// labeled renders "label value" when value is non-blank, else "".
func labeled(label, value string) string {
	if !notEmpty(value) {
		return ""
	}
	return label + " " + value
}

// buildPlan lays out the whole document and returns the drawing plan. The
// single y cursor advances monotonically; the footer is the only section
// that may jump it forward to a pinned slot.
func buildPlan(inv *domain.Invoice, company *domain.CompanyInfo, hasLogo, hasSignature bool) *plan {
	p := &plan{}
	y := 30.0
	contentW := pageWidth - 2*margin

	// Title
	p.text("پیش فاکتور فروش کالا و خدمات", fontHeader, colorText,
		rect{margin, y, contentW, 26}, alignRight, dirRTL)
	y += 36

	// Invoice meta card, anchored top-right
	const metaW, metaH = 200.0, 60.0
	metaX := pageWidth - margin - metaW
	fill := colorSurface
	p.add(boxOp{Rect: rect{metaX, y, metaW, metaH}, Fill: &fill, Stroke: colorBorder, LineWidth: 1, Radius: 4})
	p.text("تاریخ: "+format.JalaliDate(inv.Date), fontBody, colorText,
		rect{metaX + 10, y + 10, metaW - 20, 20}, alignRight, dirRTL)
	p.text("شماره فاکتور: "+inv.InvoiceNumber, fontBody, colorText,
		rect{metaX + 10, y + 32, metaW - 20, 20}, alignRight, dirRTL)
	y += metaH + 20

	y = layoutSellerBlock(p, y, company, hasLogo)
	y = layoutBuyerBlock(p, y, &inv.Customer)
	y = layoutItemsTable(p, y, inv)
	y = layoutTotals(p, y, inv)

	// Account/payment info, only when an account number is set. The value
	// reads left-to-right by convention even in an RTL document.
	if notEmpty(inv.AccountNumber) {
		p.text("شماره حساب:", fontBoldBody, colorText,
			rect{pageWidth - margin - 150, y, 150, 20}, alignRight, dirRTL)
		p.text(inv.AccountNumber, fontBody, colorText,
			rect{margin, y, contentW - 160, 20}, alignLeft, dirLTR)
		y += 30
	}

	// Notes, only when non-blank after trimming
	if notEmpty(inv.Notes) {
		p.text("یادداشت:", fontSubHeader, colorText,
			rect{margin, y, contentW, 20}, alignRight, dirRTL)
		y += 25
		tint := colorWarningBG
		p.add(boxOp{Rect: rect{margin, y, contentW, notesBoxHeight}, Fill: &tint, Stroke: colorWarning, LineWidth: 1})
		p.text(inv.Notes, fontBody, colorText,
			rect{margin + 10, y + 10, contentW - 20, notesBoxHeight - 20}, alignRight, dirRTL)
		y += notesBoxHeight + 20
	}

	layoutFooter(p, y, hasSignature)
	return p
}

// layoutSellerBlock draws the company block. Every optional field is
// omitted entirely when empty; the name line always appears. A present logo
// is inset at the left edge of the box and the text area shrinks to avoid
// it.
func layoutSellerBlock(p *plan, y float64, company *domain.CompanyInfo, hasLogo bool) float64 {
	contentW := pageWidth - 2*margin
	const boxH = 60.0

	p.text("مشخصات فروشنده:", fontBoldBody, colorText,
		rect{margin, y, 150, 20}, alignRight, dirRTL)
	y += 25

	fill := colorSurface
	p.add(boxOp{Rect: rect{margin, y, contentW, boxH}, Fill: &fill, Stroke: colorBorder, LineWidth: 1})

	textX := margin + 10.0
	textW := contentW - 20.0
	if hasLogo {
		const logoSize = 50.0
		p.add(imageOp{Name: "logo", Rect: rect{margin + 5, y + 5, logoSize, logoSize}})
		textX = margin + logoSize + 15
		textW = contentW - logoSize - 25
	}

	info := joinParts("    ",
		"نام شرکت یا مجموعه: "+company.Name,
		labeled("تلفن:", company.Phone),
		labeled("ایمیل:", company.Email),
		labeled("وب‌سایت:", company.Website),
	)
	p.text(info, fontBody, colorText, rect{textX, y + 10, textW, 20}, alignRight, dirRTL)

	address := joinParts("    ",
		"نشانی: "+company.Address,
		labeled("شهر:", company.City),
	)
	p.text(address, fontBody, colorText, rect{textX, y + 32, textW, 20}, alignRight, dirRTL)

	return y + boxH + 15
}

// layoutBuyerBlock mirrors the seller block for the customer snapshot. The
// name is always shown, even as an empty string.
func layoutBuyerBlock(p *plan, y float64, customer *domain.Customer) float64 {
	contentW := pageWidth - 2*margin
	const boxH = 60.0

	p.text("مشخصات خریدار:", fontBoldBody, colorText,
		rect{margin, y, 150, 20}, alignRight, dirRTL)
	y += 25

	fill := colorSurface
	p.add(boxOp{Rect: rect{margin, y, contentW, boxH}, Fill: &fill, Stroke: colorBorder, LineWidth: 1})

	info := joinParts("    ",
		"نام خریدار: "+customer.Name,
		labeled("تلفن:", customer.Phone),
		labeled("ایمیل:", customer.Email),
		labeled("کد پستی:", customer.PostalCode),
	)
	p.text(info, fontBody, colorText, rect{margin + 10, y + 10, contentW - 20, 20}, alignRight, dirRTL)

	address := joinParts("، ",
		"نشانی: "+customer.Address,
		labeled("شهر:", customer.City),
	)
	p.text(address, fontBody, colorText, rect{margin + 10, y + 32, contentW - 20, 20}, alignRight, dirRTL)

	return y + boxH + 20
}

// layoutItemsTable draws the header row and one fixed-height row per item.
// Zero items leaves an empty-bodied table. Row height is constant; long
// descriptions are not measured or wrapped.
func layoutItemsTable(p *plan, y float64, inv *domain.Invoice) float64 {
	contentW := pageWidth - 2*margin

	p.text("مشخصات کالا یا خدمات:", fontBoldBody, colorText,
		rect{margin, y, 200, 20}, alignRight, dirRTL)
	y += 25

	fill := colorSurface
	p.add(boxOp{Rect: rect{margin, y, contentW, tableRowHeight}, Fill: &fill, Stroke: colorBorder, LineWidth: 1})

	headers := [4]string{"شرح کالا یا خدمات", "تعداد", "قیمت واحد", "جمع"}
	x := margin
	for c := 0; c < 4; c++ {
		a := alignCenter
		if c == 0 {
			a = alignRight
		}
		p.text(headers[c], fontBoldBody, colorText,
			rect{x + 5, y + 8, colWidths[c] - 10, 15}, a, dirRTL)
		x += colWidths[c]
	}
	y += tableRowHeight

	for i := range inv.Items {
		item := &inv.Items[i]
		p.add(boxOp{Rect: rect{margin, y, contentW, tableRowHeight}, Stroke: colorSecondary, LineWidth: 1})

		cells := [4]string{
			item.Description,
			format.Number(item.Quantity),
			format.Amount(item.UnitPrice, inv.Currency),
			format.Amount(item.Total(), inv.Currency),
		}
		x = margin
		for c := 0; c < 4; c++ {
			a := alignCenter
			if c == 0 {
				a = alignRight
			}
			p.text(cells[c], fontBody, colorText,
				rect{x + 5, y + 8, colWidths[c] - 10, 15}, a, dirRTL)
			x += colWidths[c]
		}
		y += tableRowHeight
	}

	p.add(lineOp{X1: margin, Y1: y, X2: pageWidth - margin, Y2: y, Color: colorBorder, Width: 1})
	return y + 25
}

// layoutTotals draws the right-anchored totals box. The discount and tax
// lines are conditional, so the box height is computed from the line count
// before the box itself is emitted.
func layoutTotals(p *plan, y float64, inv *domain.Invoice) float64 {
	type totalLine struct {
		label, value string
		font         fontSpec
		color        rgb
	}

	lines := []totalLine{
		{"جمع کل:", format.Amount(inv.Subtotal(), inv.Currency), fontBody, colorText},
	}
	if inv.DiscountRate > 0 {
		lines = append(lines, totalLine{
			"تخفیف (" + format.Percent(inv.DiscountRate) + "):",
			"-" + format.Amount(inv.DiscountAmount(), inv.Currency),
			fontBody, colorText,
		})
	}
	if inv.TaxRate > 0 {
		lines = append(lines, totalLine{
			"مالیات (" + format.Percent(inv.TaxRate) + "):",
			format.Amount(inv.TaxAmount(), inv.Currency),
			fontBody, colorText,
		})
	}
	lines = append(lines, totalLine{
		"مبلغ قابل پرداخت:", format.Amount(inv.Total(), inv.Currency), fontTotal, colorAccent,
	})

	const boxW = 200.0
	boxX := pageWidth - margin - boxW
	boxH := float64(len(lines))*totalsRowH + 16

	fill := colorSurface
	p.add(boxOp{Rect: rect{boxX, y, boxW, boxH}, Fill: &fill, Stroke: colorBorder, LineWidth: 1, Radius: 4})

	lineY := y + 8
	for _, l := range lines {
		p.text(l.label, l.font, l.color,
			rect{boxX + boxW/2, lineY, boxW/2 - 10, 20}, alignRight, dirRTL)
		p.text(l.value, l.font, l.color,
			rect{boxX + 10, lineY, boxW/2 - 10, 20}, alignRight, dirRTL)
		lineY += totalsRowH
	}

	return y + boxH + 20
}

// layoutFooter pins the footer to the bottom slot on short invoices. On
// long invoices the cursor may already be past the slot, in which case the
// footer follows it and can run off the page; there is no page-break check.
func layoutFooter(p *plan, y float64, hasSignature bool) {
	minY := pageHeight - footerHeight - footerGap
	if y < minY {
		y = minY
	}

	p.add(lineOp{X1: margin, Y1: y, X2: pageWidth - margin, Y2: y, Color: colorBorder, Width: 1})
	y += 15

	if hasSignature {
		const sigW, sigH = 120.0, 50.0
		sigX := pageWidth - margin - sigW - 20
		p.text("امضا و مهر:", fontBoldBody, colorText,
			rect{sigX, y, sigW, 20}, alignRight, dirRTL)
		p.add(imageOp{Name: "signature", Rect: rect{sigX, y + 25, sigW, sigH}})
	}

	p.text("با تشکر از اعتماد شما", fontBody, colorSecondary,
		rect{margin, y + 35, 200, 20}, alignRight, dirRTL)

	p.text("صفحه ۱", fontSmall, colorSecondary,
		rect{margin, pageHeight - 25, pageWidth - 2*margin, 15}, alignCenter, dirRTL)
}
