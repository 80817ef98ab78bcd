package l10n

import (
	"strings"
	"time"

	"github.com/goodsign/monday"

	"github.com/dmitrymomot/localekit/i18n"
)

// Named format styles, mirroring the four CLDR widths.
const (
	StyleShort  = "short"
	StyleMedium = "medium"
	StyleLong   = "long"
	StyleFull   = "full"
)

// layouts holds the Go reference layouts of one language for every
// kind/style combination. Month and weekday names inside the layouts are
// translated by monday at format time.
type layouts struct {
	date     map[string]string
	clock    map[string]string
	datetime map[string]string
}

var englishLayouts = layouts{
	date: map[string]string{
		StyleShort:  "1/2/06",
		StyleMedium: "Jan 2, 2006",
		StyleLong:   "January 2, 2006",
		StyleFull:   "Monday, January 2, 2006",
	},
	clock: map[string]string{
		StyleShort:  "3:04 PM",
		StyleMedium: "3:04:05 PM",
		StyleLong:   "3:04:05 PM MST",
		StyleFull:   "3:04:05 PM MST",
	},
	datetime: map[string]string{
		StyleShort:  "1/2/06, 3:04 PM",
		StyleMedium: "Jan 2, 2006, 3:04:05 PM",
		StyleLong:   "January 2, 2006 at 3:04:05 PM MST",
		StyleFull:   "Monday, January 2, 2006 at 3:04:05 PM MST",
	},
}

// layoutsByLang is keyed by base language. Anything absent falls back to the
// English widths, which monday still renders with localized names.
var layoutsByLang = map[string]layouts{
	"en": englishLayouts,
	"de": {
		date: map[string]string{
			StyleShort:  "02.01.06",
			StyleMedium: "02.01.2006",
			StyleLong:   "2. January 2006",
			StyleFull:   "Monday, 2. January 2006",
		},
		clock: map[string]string{
			StyleShort:  "15:04",
			StyleMedium: "15:04:05",
			StyleLong:   "15:04:05 MST",
			StyleFull:   "15:04:05 MST",
		},
		datetime: map[string]string{
			StyleShort:  "02.01.06, 15:04",
			StyleMedium: "02.01.2006, 15:04:05",
			StyleLong:   "2. January 2006 um 15:04:05 MST",
			StyleFull:   "Monday, 2. January 2006 um 15:04:05 MST",
		},
	},
	"fr": {
		date: map[string]string{
			StyleShort:  "02/01/2006",
			StyleMedium: "2 Jan 2006",
			StyleLong:   "2 January 2006",
			StyleFull:   "Monday 2 January 2006",
		},
		clock: map[string]string{
			StyleShort:  "15:04",
			StyleMedium: "15:04:05",
			StyleLong:   "15:04:05 MST",
			StyleFull:   "15:04:05 MST",
		},
		datetime: map[string]string{
			StyleShort:  "02/01/2006 15:04",
			StyleMedium: "2 Jan 2006, 15:04:05",
			StyleLong:   "2 January 2006 à 15:04:05 MST",
			StyleFull:   "Monday 2 January 2006 à 15:04:05 MST",
		},
	},
	"es": {
		date: map[string]string{
			StyleShort:  "2/1/06",
			StyleMedium: "2 Jan 2006",
			StyleLong:   "2 January 2006",
			StyleFull:   "Monday, 2 January 2006",
		},
		clock: map[string]string{
			StyleShort:  "15:04",
			StyleMedium: "15:04:05",
			StyleLong:   "15:04:05 MST",
			StyleFull:   "15:04:05 MST",
		},
		datetime: map[string]string{
			StyleShort:  "2/1/06, 15:04",
			StyleMedium: "2 Jan 2006, 15:04:05",
			StyleLong:   "2 January 2006, 15:04:05 MST",
			StyleFull:   "Monday, 2 January 2006, 15:04:05 MST",
		},
	},
	"uk": {
		date: map[string]string{
			StyleShort:  "02.01.06",
			StyleMedium: "02.01.2006",
			StyleLong:   "2 January 2006",
			StyleFull:   "Monday, 2 January 2006",
		},
		clock: map[string]string{
			StyleShort:  "15:04",
			StyleMedium: "15:04:05",
			StyleLong:   "15:04:05 MST",
			StyleFull:   "15:04:05 MST",
		},
		datetime: map[string]string{
			StyleShort:  "02.01.06, 15:04",
			StyleMedium: "02.01.2006, 15:04:05",
			StyleLong:   "2 January 2006, 15:04:05 MST",
			StyleFull:   "Monday, 2 January 2006, 15:04:05 MST",
		},
	},
}

// mondayLocales maps normalized locales to monday's name tables. Lookup
// tries the exact locale first, then the base language.
var mondayLocales = map[string]monday.Locale{
	"en":    monday.LocaleEnUS,
	"en-us": monday.LocaleEnUS,
	"en-gb": monday.LocaleEnGB,
	"de":    monday.LocaleDeDE,
	"de-de": monday.LocaleDeDE,
	"fr":    monday.LocaleFrFR,
	"fr-fr": monday.LocaleFrFR,
	"fr-ca": monday.LocaleFrCA,
	"es":    monday.LocaleEsES,
	"es-es": monday.LocaleEsES,
	"it":    monday.LocaleItIT,
	"nl":    monday.LocaleNlNL,
	"pt":    monday.LocalePtPT,
	"pt-br": monday.LocalePtBR,
	"pl":    monday.LocalePlPL,
	"ru":    monday.LocaleRuRU,
	"uk":    monday.LocaleUkUA,
	"sv":    monday.LocaleSvSE,
	"da":    monday.LocaleDaDK,
	"nb":    monday.LocaleNbNO,
	"fi":    monday.LocaleFiFI,
	"cs":    monday.LocaleCsCZ,
	"el":    monday.LocaleElGR,
	"hu":    monday.LocaleHuHU,
	"ro":    monday.LocaleRoRO,
	"tr":    monday.LocaleTrTR,
	"bg":    monday.LocaleBgBG,
	"id":    monday.LocaleIdID,
	"ja":    monday.LocaleJaJP,
	"ko":    monday.LocaleKoKR,
	"zh":    monday.LocaleZhCN,
	"zh-cn": monday.LocaleZhCN,
	"zh-tw": monday.LocaleZhTW,
}

func (f *Formatter) mondayLocale() monday.Locale {
	if loc, ok := mondayLocales[f.locale]; ok {
		return loc
	}
	if loc, ok := mondayLocales[i18n.BaseLocale(f.locale)]; ok {
		return loc
	}
	return monday.LocaleEnUS
}

func (f *Formatter) layoutTable() layouts {
	if l, ok := layoutsByLang[i18n.BaseLocale(f.locale)]; ok {
		return l
	}
	return englishLayouts
}

// isStyle reports whether s names one of the four format widths.
func isStyle(s string) bool {
	switch s {
	case StyleShort, StyleMedium, StyleLong, StyleFull:
		return true
	}
	return false
}

// Format resolves the layout for a kind ("date", "time", "datetime") and
// style. An empty style means the configured default for the kind, medium
// when nothing was configured. Style values that are not one of the four
// width names are treated as explicit Go reference layouts.
func (f *Formatter) Format(kind, style string) string {
	if style == "" {
		style = f.formats[kind]
		if style == "" {
			style = StyleMedium
		}
	}
	if layout, ok := f.formats[kind+"."+style]; ok {
		return layout
	}
	if !isStyle(style) {
		return style
	}

	table := f.layoutTable()
	var m map[string]string
	switch kind {
	case "date":
		m = table.date
	case "time":
		m = table.clock
	default:
		m = table.datetime
	}
	return m[style]
}

// frShortMonths maps the dotless French month abbreviations to their CLDR
// forms. Genuine abbreviations carry a trailing period; full-word months
// (mars, mai, juin, août) stay bare and are not listed.
var frShortMonths = map[string]string{
	"janv": "janv.",
	"févr": "févr.",
	"avr":  "avr.",
	"juil": "juil.",
	"sept": "sept.",
	"oct":  "oct.",
	"nov":  "nov.",
	"déc":  "déc.",
}

func (f *Formatter) render(t time.Time, layout string) string {
	out := monday.Format(t.In(f.loc), layout, f.mondayLocale())

	// monday's French table has no periods on abbreviated months. Restore
	// them whenever the layout used the short month token.
	if i18n.BaseLocale(f.locale) == "fr" &&
		strings.Contains(layout, "Jan") && !strings.Contains(layout, "January") {
		words := strings.Split(out, " ")
		for i, w := range words {
			if dotted, ok := frShortMonths[w]; ok {
				words[i] = dotted
			}
		}
		out = strings.Join(words, " ")
	}
	return out
}

// FormatDatetime renders the date and time of t in the user timezone. Style
// is one of the width names, an explicit Go layout, or "" for the default.
func (f *Formatter) FormatDatetime(t time.Time, style string) string {
	return f.render(t, f.Format("datetime", style))
}

// FormatDate renders the date part of t in the user timezone.
func (f *Formatter) FormatDate(t time.Time, style string) string {
	return f.render(t, f.Format("date", style))
}

// FormatTime renders the time part of t in the user timezone.
func (f *Formatter) FormatTime(t time.Time, style string) string {
	return f.render(t, f.Format("time", style))
}
