package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceItem_Total(t *testing.T) {
	item := InvoiceItem{Quantity: 2.5, UnitPrice: 1200000}
	assert.InDelta(t, 3000000.0, item.Total(), 0.001)
}

func TestInvoice_Totals_SingleItemWithTax(t *testing.T) {
	inv := Invoice{
		Items:   []InvoiceItem{{Quantity: 1, UnitPrice: 5000000}},
		TaxRate: 9,
	}

	assert.InDelta(t, 5000000.0, inv.Subtotal(), 0.001)
	assert.InDelta(t, 0.0, inv.DiscountAmount(), 0.001)
	assert.InDelta(t, 5000000.0, inv.SubtotalAfterDiscount(), 0.001)
	assert.InDelta(t, 450000.0, inv.TaxAmount(), 0.001)
	assert.InDelta(t, 5450000.0, inv.Total(), 0.001)
}

func TestInvoice_Totals_DiscountThenTax(t *testing.T) {
	// Tax applies to the discounted subtotal, not the raw subtotal.
	inv := Invoice{
		Items: []InvoiceItem{
			{Quantity: 2, UnitPrice: 2500000},
			{Quantity: 1, UnitPrice: 1500000},
		},
		DiscountRate: 5,
		TaxRate:      9,
	}

	assert.InDelta(t, 6500000.0, inv.Subtotal(), 0.001)
	assert.InDelta(t, 325000.0, inv.DiscountAmount(), 0.001)
	assert.InDelta(t, 6175000.0, inv.SubtotalAfterDiscount(), 0.001)
	assert.InDelta(t, 555750.0, inv.TaxAmount(), 0.001)
	assert.InDelta(t, 6730750.0, inv.Total(), 0.001)
}

func TestInvoice_Totals_EmptyItems(t *testing.T) {
	inv := Invoice{DiscountRate: 10, TaxRate: 9}

	assert.Zero(t, inv.Subtotal())
	assert.Zero(t, inv.DiscountAmount())
	assert.Zero(t, inv.TaxAmount())
	assert.Zero(t, inv.Total())
}

func TestInvoice_Totals_FractionalQuantity(t *testing.T) {
	inv := Invoice{
		Items: []InvoiceItem{{Quantity: 0.5, UnitPrice: 1000000}},
	}
	assert.InDelta(t, 500000.0, inv.Total(), 0.001)
}

func TestCurrency_Label(t *testing.T) {
	assert.Equal(t, "تومان", CurrencyToman.Label())
	assert.Equal(t, "ریال", CurrencyRial.Label())
	// Unknown currencies fall back to the toman label.
	assert.Equal(t, "تومان", Currency("dollar").Label())
}

func TestCurrency_Valid(t *testing.T) {
	assert.True(t, CurrencyToman.Valid())
	assert.True(t, CurrencyRial.Valid())
	assert.False(t, Currency("eur").Valid())
	assert.False(t, Currency("").Valid())
}

func TestImageKind_Valid(t *testing.T) {
	assert.True(t, ImageLogo.Valid())
	assert.True(t, ImageSignature.Valid())
	assert.False(t, ImageKind("banner").Valid())
}

func TestImageObjectKeys(t *testing.T) {
	assert.Equal(t, "company_logo.png", ImageObjectKeys[ImageLogo])
	assert.Equal(t, "signature.png", ImageObjectKeys[ImageSignature])
}

func TestDefaultCompanyInfo(t *testing.T) {
	info := DefaultCompanyInfo()
	assert.Equal(t, "شرکت شما", info.Name)
	assert.NotEmpty(t, info.Address)
	assert.NotEmpty(t, info.Phone)
}
