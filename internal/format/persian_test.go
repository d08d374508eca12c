package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faktor/internal/domain"
)

func TestToPersianDigits(t *testing.T) {
	assert.Equal(t, "۱۲۳۴۵۶۷۸۹۰", ToPersianDigits("1234567890"))
	assert.Equal(t, "INV-۰۰۴۲", ToPersianDigits("INV-0042"))
	assert.Equal(t, "بدون رقم", ToPersianDigits("بدون رقم"))
	assert.Equal(t, "", ToPersianDigits(""))
}

func TestToLatinDigits(t *testing.T) {
	assert.Equal(t, "1234567890", ToLatinDigits("۱۲۳۴۵۶۷۸۹۰"))
	// Arabic-Indic digits map too.
	assert.Equal(t, "123", ToLatinDigits("١٢٣"))
	assert.Equal(t, "abc", ToLatinDigits("abc"))
}

func TestToDigits_RoundTrip(t *testing.T) {
	assert.Equal(t, "0123456789", ToLatinDigits(ToPersianDigits("0123456789")))
}

func TestAmount_GroupedPersianDigits(t *testing.T) {
	got := Amount(5450000, domain.CurrencyToman)

	assert.Contains(t, got, "تومان")
	assert.Contains(t, got, "۵")
	assert.Contains(t, got, "٬")
	// Grouped thousands round-trip back to the original value.
	n, err := ParseAmount(got)
	require.NoError(t, err)
	assert.Equal(t, int64(5450000), n)
}

func TestAmount_RoundsToInteger(t *testing.T) {
	n, err := ParseAmount(Amount(1234.6, domain.CurrencyRial))
	require.NoError(t, err)
	assert.Equal(t, int64(1235), n)
}

func TestAmount_RialLabel(t *testing.T) {
	assert.Contains(t, Amount(1000, domain.CurrencyRial), "ریال")
}

func TestAmount_Zero(t *testing.T) {
	got := Amount(0, domain.CurrencyToman)
	assert.Contains(t, got, "۰")
	assert.Contains(t, got, "تومان")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "۹٪", Percent(9))
	assert.Equal(t, "۲.۵٪", Percent(2.5))
	assert.Equal(t, "۰٪", Percent(0))
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"۵٬۴۵۰٬۰۰۰ تومان", 5450000},
		{"۱۰۰", 100},
		{"1,234", 1234},
		{"-۵۰۰ ریال", -500},
		{"۰ تومان", 0},
	}
	for _, tc := range cases {
		n, err := ParseAmount(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, n, tc.in)
	}
}

func TestParseAmount_NoDigits(t *testing.T) {
	_, err := ParseAmount("تومان")
	assert.Error(t, err)

	_, err = ParseAmount("")
	assert.Error(t, err)
}

func TestParseAmount_InverseOfAmount(t *testing.T) {
	for _, v := range []float64{0, 1, 999, 1000, 123456789} {
		n, err := ParseAmount(Amount(v, domain.CurrencyToman))
		require.NoError(t, err)
		assert.Equal(t, int64(v), n)
	}
}

func TestJalaliDate(t *testing.T) {
	// 2025-03-21 is 1 Farvardin 1404.
	d := time.Date(2025, 3, 21, 12, 0, 0, 0, time.UTC)

	got := JalaliDate(d)
	assert.Contains(t, got, "فروردین")
	assert.Contains(t, got, "۱۴۰۴")
	assert.Contains(t, got, "۱")
	// No ASCII digits leak through.
	assert.Equal(t, got, ToPersianDigits(ToLatinDigits(got)))
}

func TestJalaliDateShort(t *testing.T) {
	d := time.Date(2025, 3, 21, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "۱۴۰۴/۰۱/۰۱", JalaliDateShort(d))
}

func TestNumber_FractionDigits(t *testing.T) {
	got := Number(2.5)
	assert.Contains(t, got, "۲")
	assert.Contains(t, got, "۵")
}
