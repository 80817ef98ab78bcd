package l10n

import (
	"math"
	"strconv"

	"golang.org/x/text/number"
)

// FormatNumber renders an integer with locale grouping separators:
// 1099 becomes "1,099" for English and "1.099" for German.
func (f *Formatter) FormatNumber(n int64) string {
	return f.printer.Sprintf("%v", number.Decimal(n))
}

// FormatDecimal renders a decimal number with the locale's separators,
// keeping the shortest representation of the fractional part:
// 1010.99 becomes "1,010.99" for English.
func (f *Formatter) FormatDecimal(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v))
}

// FormatDecimalDigits renders a decimal with a fixed number of fraction
// digits.
func (f *Formatter) FormatDecimalDigits(v float64, digits int) string {
	return f.printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
}

// FormatPercent renders a ratio as a percentage: 0.19 becomes "19%".
func (f *Formatter) FormatPercent(v float64) string {
	return f.printer.Sprintf("%v", number.Percent(v))
}

// FormatScientific renders a number in compact exponent notation:
// 10000 becomes "1E4" and 0.00001 becomes "1E-5". The mantissa uses the
// locale's decimal separator.
func (f *Formatter) FormatScientific(v float64) string {
	if v == 0 {
		return "0E0"
	}

	exp := int(math.Floor(math.Log10(math.Abs(v))))
	mant := v / math.Pow(10, float64(exp))
	// Guard against float drift pushing the mantissa out of [1, 10).
	if math.Abs(mant) >= 10 {
		mant /= 10
		exp++
	}

	return f.printer.Sprintf("%v", number.Decimal(mant, number.MaxFractionDigits(6))) +
		"E" + strconv.Itoa(exp)
}
