package l10n

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/feature/plural"

	"github.com/dmitrymomot/localekit/i18n"
)

// Duration granularity units, largest first. Months and years use the CLDR
// approximations so "45 days" humanizes to "1 month" rather than "6 weeks".
const (
	UnitYear   = "year"
	UnitMonth  = "month"
	UnitWeek   = "week"
	UnitDay    = "day"
	UnitHour   = "hour"
	UnitMinute = "minute"
	UnitSecond = "second"
)

var deltaUnits = []struct {
	name    string
	seconds float64
}{
	{UnitYear, 365 * 24 * 3600},
	{UnitMonth, 30 * 24 * 3600},
	{UnitWeek, 7 * 24 * 3600},
	{UnitDay, 24 * 3600},
	{UnitHour, 3600},
	{UnitMinute, 60},
	{UnitSecond, 1},
}

// unitNames maps base language to singular/plural unit names. English is the
// fallback for languages without a table.
var unitNames = map[string]map[string][2]string{
	"en": {
		UnitYear:   {"%{n} year", "%{n} years"},
		UnitMonth:  {"%{n} month", "%{n} months"},
		UnitWeek:   {"%{n} week", "%{n} weeks"},
		UnitDay:    {"%{n} day", "%{n} days"},
		UnitHour:   {"%{n} hour", "%{n} hours"},
		UnitMinute: {"%{n} minute", "%{n} minutes"},
		UnitSecond: {"%{n} second", "%{n} seconds"},
	},
	"de": {
		UnitYear:   {"%{n} Jahr", "%{n} Jahre"},
		UnitMonth:  {"%{n} Monat", "%{n} Monate"},
		UnitWeek:   {"%{n} Woche", "%{n} Wochen"},
		UnitDay:    {"%{n} Tag", "%{n} Tage"},
		UnitHour:   {"%{n} Stunde", "%{n} Stunden"},
		UnitMinute: {"%{n} Minute", "%{n} Minuten"},
		UnitSecond: {"%{n} Sekunde", "%{n} Sekunden"},
	},
	"fr": {
		UnitYear:   {"%{n} an", "%{n} ans"},
		UnitMonth:  {"%{n} mois", "%{n} mois"},
		UnitWeek:   {"%{n} semaine", "%{n} semaines"},
		UnitDay:    {"%{n} jour", "%{n} jours"},
		UnitHour:   {"%{n} heure", "%{n} heures"},
		UnitMinute: {"%{n} minute", "%{n} minutes"},
		UnitSecond: {"%{n} seconde", "%{n} secondes"},
	},
	"es": {
		UnitYear:   {"%{n} año", "%{n} años"},
		UnitMonth:  {"%{n} mes", "%{n} meses"},
		UnitWeek:   {"%{n} semana", "%{n} semanas"},
		UnitDay:    {"%{n} día", "%{n} días"},
		UnitHour:   {"%{n} hora", "%{n} horas"},
		UnitMinute: {"%{n} minuto", "%{n} minutos"},
		UnitSecond: {"%{n} segundo", "%{n} segundos"},
	},
}

// agoPatterns renders relative past times for TimeSince; %{delta} is the
// humanized duration.
var agoPatterns = map[string]string{
	"en": "%{delta} ago",
	"de": "vor %{delta}",
	"fr": "il y a %{delta}",
	"es": "hace %{delta}",
}

// DeltaOption adjusts timedelta humanization.
type DeltaOption func(*deltaConfig)

type deltaConfig struct {
	threshold   float64
	granularity string
}

// WithThreshold sets the factor at which the next larger unit takes over.
// The default 0.85 turns 6 days into "1 week"; a threshold of 1 keeps it at
// "6 days".
func WithThreshold(threshold float64) DeltaOption {
	return func(c *deltaConfig) {
		if threshold > 0 {
			c.threshold = threshold
		}
	}
}

// WithGranularity sets the smallest unit to report; shorter durations round
// up to one of that unit.
func WithGranularity(unit string) DeltaOption {
	return func(c *deltaConfig) {
		if unit != "" {
			c.granularity = unit
		}
	}
}

// FormatTimedelta humanizes a duration as a single unit quantity:
// 6 days becomes "1 week", 90 minutes becomes "2 hours".
func (f *Formatter) FormatTimedelta(d time.Duration, opts ...DeltaOption) string {
	cfg := deltaConfig{threshold: 0.85, granularity: UnitSecond}
	for _, opt := range opts {
		opt(&cfg)
	}

	seconds := math.Abs(d.Seconds())
	for _, unit := range deltaUnits {
		value := seconds / unit.seconds
		if value >= cfg.threshold || unit.name == cfg.granularity {
			// A non-zero duration never reads "0 seconds"; it rounds up to
			// one of the granularity unit instead.
			if unit.name == cfg.granularity && value > 0 && value < 1 {
				value = 1
			}
			return f.unitQuantity(unit.name, int(math.Round(value)))
		}
	}
	return f.unitQuantity(UnitSecond, 0)
}

// TimeSince humanizes how long ago t was: "5 hours ago". The reference point
// is the current time.
func (f *Formatter) TimeSince(t time.Time) string {
	return f.timeSince(t, time.Now())
}

func (f *Formatter) timeSince(t, now time.Time) string {
	delta := f.FormatTimedelta(now.Sub(t))
	pattern, ok := agoPatterns[i18n.BaseLocale(f.locale)]
	if !ok {
		pattern = agoPatterns["en"]
	}
	return replaceToken(pattern, "delta", delta)
}

// unitQuantity picks the singular or plural unit name by the CLDR cardinal
// rules of the formatter's language and fills in the grouped number.
func (f *Formatter) unitQuantity(unit string, n int) string {
	names, ok := unitNames[i18n.BaseLocale(f.locale)]
	if !ok {
		names = unitNames["en"]
	}

	pair := names[unit]
	name := pair[1]
	if plural.Cardinal.MatchPlural(f.tag, n, 0, 0, 0, 0) == plural.One {
		name = pair[0]
	}
	return replaceToken(name, "n", f.FormatNumber(int64(n)))
}

func replaceToken(pattern, token, value string) string {
	return strings.ReplaceAll(pattern, "%{"+token+"}", value)
}
