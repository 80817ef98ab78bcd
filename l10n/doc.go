// Package l10n formats dates, times, numbers and currency amounts according
// to the conventions of a locale and timezone.
//
// A Formatter is bound to one locale and one timezone at construction and is
// immutable afterwards; create one per resolved request locale:
//
//	vienna, _ := time.LoadLocation("Europe/Vienna")
//	f, err := l10n.New("de_DE", l10n.WithLocation(vienna))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f.FormatDatetime(t, "")          // "12.04.2010, 15:46:00"
//	f.FormatDate(t, l10n.StyleLong)  // "12. April 2010"
//	f.FormatNumber(1099)             // "1.099"
//	f.FormatCurrency(1099, "EUR")    // "1.099,00 €"
//	f.FormatTimedelta(6 * 24 * time.Hour) // "1 Woche"
//
// Number, decimal and percent formatting delegate to golang.org/x/text so
// grouping and decimal separators come from CLDR data. Date and time
// formatting uses Go reference layouts with month and weekday names
// localized through github.com/goodsign/monday; the layout chosen for each
// of the four width styles (short, medium, long, full) can be overridden per
// Formatter with WithDateFormats.
//
// All formatting of instants converts into the formatter's timezone first,
// so a UTC timestamp renders as local wall-clock time for the user.
package l10n
