package localekit

import (
	"context"
	"time"

	"github.com/dmitrymomot/localekit/i18n"
)

type timezoneContextKey struct{}

// WithLocale returns a context carrying the locale. It overrides whatever the
// middleware resolved, which makes it the force-locale mechanism: render a
// notification in the recipient's language regardless of the current request.
func WithLocale(ctx context.Context, locale string) context.Context {
	return i18n.SetLocale(ctx, i18n.NormalizeLocale(locale))
}

// Locale returns the locale stored in the context, or an empty string when
// none was resolved.
func Locale(ctx context.Context) string {
	return i18n.GetLocale(ctx)
}

// WithTimezone returns a context carrying the user timezone.
func WithTimezone(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, timezoneContextKey{}, loc)
}

// Timezone returns the timezone stored in the context, or nil when none was
// resolved.
func Timezone(ctx context.Context) *time.Location {
	if ctx == nil {
		return nil
	}
	loc, _ := ctx.Value(timezoneContextKey{}).(*time.Location)
	return loc
}
