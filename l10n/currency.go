package l10n

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/localekit/i18n"
)

// currencySymbols holds display symbols for the currencies most applications
// bill in. Codes outside the table render as "CODE amount", which is the
// unambiguous fallback.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "CN¥",
	"AUD": "A$",
	"CAD": "CA$",
	"CHF": "CHF",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"CZK": "Kč",
	"UAH": "₴",
	"TRY": "₺",
	"INR": "₹",
	"BRL": "R$",
	"KRW": "₩",
}

// symbolAfterAmount lists base languages whose convention puts the currency
// symbol after the amount with a separating space, "1.099,00 €" style.
var symbolAfterAmount = map[string]bool{
	"de": true,
	"fr": true,
	"es": true,
	"it": true,
	"pt": true,
	"pl": true,
	"cs": true,
	"uk": true,
	"ru": true,
	"sv": true,
	"da": true,
	"nb": true,
	"fi": true,
	"tr": true,
	"bg": true,
	"hu": true,
	"ro": true,
}

// FormatCurrency renders a monetary amount for the formatter's locale. The
// code must be a valid ISO 4217 currency code; the fraction digit count
// comes from the currency definition (two for USD, none for JPY).
//
//	f.FormatCurrency(1099, "USD") // "$1,099.00" for English
func (f *Formatter) FormatCurrency(amount float64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", &ErrUnknownCurrency{Code: code}
	}

	scale, _ := currency.Standard.Rounding(unit)
	num := f.printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(scale),
		number.MaxFractionDigits(scale),
	))

	symbol, known := currencySymbols[unit.String()]
	if !known {
		return unit.String() + " " + num, nil
	}
	if symbolAfterAmount[i18n.BaseLocale(f.locale)] {
		return num + " " + symbol, nil
	}
	return symbol + num, nil
}
