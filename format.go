package localekit

import (
	"context"
	"time"

	"github.com/dmitrymomot/localekit/l10n"
)

// Formatter builds a locale formatter for the context's locale and timezone,
// carrying the Kit's date format overrides.
func (k *Kit) Formatter(ctx context.Context) *l10n.Formatter {
	k.mu.RLock()
	formats := make(map[string]string, len(k.dateFormats))
	for key, val := range k.dateFormats {
		formats[key] = val
	}
	k.mu.RUnlock()

	return l10n.NewOrDefault(k.CurrentLocale(ctx),
		l10n.WithLocation(k.CurrentTimezone(ctx)),
		l10n.WithDateFormats(formats),
	)
}

// FormatDatetime renders a timestamp in the context locale and timezone.
// Style is short, medium, long, full, an explicit Go layout, or "" for the
// default.
func (k *Kit) FormatDatetime(ctx context.Context, t time.Time, style string) string {
	return k.Formatter(ctx).FormatDatetime(t, style)
}

// FormatDate renders the date part of a timestamp.
func (k *Kit) FormatDate(ctx context.Context, t time.Time, style string) string {
	return k.Formatter(ctx).FormatDate(t, style)
}

// FormatTime renders the time part of a timestamp.
func (k *Kit) FormatTime(ctx context.Context, t time.Time, style string) string {
	return k.Formatter(ctx).FormatTime(t, style)
}

// FormatTimedelta humanizes a duration in the context locale.
func (k *Kit) FormatTimedelta(ctx context.Context, d time.Duration, opts ...l10n.DeltaOption) string {
	return k.Formatter(ctx).FormatTimedelta(d, opts...)
}

// TimeSince humanizes how long ago a timestamp was in the context locale.
func (k *Kit) TimeSince(ctx context.Context, t time.Time) string {
	return k.Formatter(ctx).TimeSince(t)
}

// FormatNumber renders an integer with the context locale's grouping.
func (k *Kit) FormatNumber(ctx context.Context, n int64) string {
	return k.Formatter(ctx).FormatNumber(n)
}

// FormatDecimal renders a decimal number in the context locale.
func (k *Kit) FormatDecimal(ctx context.Context, v float64) string {
	return k.Formatter(ctx).FormatDecimal(v)
}

// FormatPercent renders a ratio as a percentage in the context locale.
func (k *Kit) FormatPercent(ctx context.Context, v float64) string {
	return k.Formatter(ctx).FormatPercent(v)
}

// FormatScientific renders a number in exponent notation in the context
// locale.
func (k *Kit) FormatScientific(ctx context.Context, v float64) string {
	return k.Formatter(ctx).FormatScientific(v)
}

// FormatCurrency renders a monetary amount in the context locale. The code
// must be a valid ISO 4217 currency code.
func (k *Kit) FormatCurrency(ctx context.Context, amount float64, code string) (string, error) {
	return k.Formatter(ctx).FormatCurrency(amount, code)
}

// ToUserTimezone converts an instant into the context timezone.
func (k *Kit) ToUserTimezone(ctx context.Context, t time.Time) time.Time {
	return t.In(k.CurrentTimezone(ctx))
}

// ToUTC reinterprets the wall-clock reading of t as context-timezone local
// time and converts it to UTC.
func (k *Kit) ToUTC(ctx context.Context, t time.Time) time.Time {
	loc := k.CurrentTimezone(ctx)
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc).UTC()
}
