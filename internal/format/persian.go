// Package format renders numbers, amounts, and dates the way a Persian
// (fa_IR) invoice displays them: native digit glyphs, locale grouping, the
// Jalali calendar, and currency labels appended as suffixes.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"faktor/internal/domain"
)

var printer = message.NewPrinter(language.Persian)

var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// ToPersianDigits replaces ASCII digits with Persian digit glyphs. Other
// characters pass through unchanged.
func ToPersianDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(persianDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToLatinDigits is the inverse of ToPersianDigits. It also maps the
// Arabic-Indic digit block, which some input methods produce.
func ToLatinDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Number formats a decimal quantity with locale grouping and Persian digits.
// No currency suffix is appended.
func Number(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// Amount formats a monetary amount: integer-rounded, locale-grouped Persian
// digits followed by the currency's display label.
func Amount(v float64, c domain.Currency) string {
	rounded := math.Round(v)
	formatted := printer.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
	return formatted + " " + c.Label()
}

// Percent renders a rate for inline interpolation in labels, e.g. "۱۰٪".
func Percent(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	return ToPersianDigits(s) + "٪"
}

// ParseAmount recovers the integer-rounded amount from a formatted string,
// ignoring any currency label. Formatting then parsing is the identity on
// integer amounts.
func ParseAmount(s string) (int64, error) {
	s = ToLatinDigits(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '−':
			b.WriteRune('-')
		case r == ',' || r == '٬' || r == ' ' || r == ' ':
			// grouping separators and padding
		default:
			// label characters follow the digits; stop once we have any
			if b.Len() > 0 {
				n, err := strconv.ParseInt(b.String(), 10, 64)
				if err != nil {
					return 0, fmt.Errorf("parse amount %q: %w", s, err)
				}
				return n, nil
			}
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("parse amount %q: no digits", s)
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return n, nil
}

// JalaliDate formats a date on the Persian (Jalali) calendar with the month
// name spelled out, medium style.
func JalaliDate(t time.Time) string {
	pt := ptime.New(t)
	return ToPersianDigits(pt.Format("d MMM yyyy"))
}

// JalaliDateShort formats a date as yyyy/mm/dd on the Persian calendar.
func JalaliDateShort(t time.Time) string {
	pt := ptime.New(t)
	return ToPersianDigits(pt.Format("yyyy/MM/dd"))
}
