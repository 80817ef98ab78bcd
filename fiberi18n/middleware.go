// Package fiberi18n adapts a localekit.Kit to Fiber applications. The
// middleware resolves the request locale and timezone and stores both in the
// Fiber user context, so the Kit's context-based operations work unchanged
// inside Fiber handlers.
//
// Selectors registered on the Kit with SetLocaleSelector and
// SetTimezoneSelector take *http.Request and are not consulted here; Fiber
// applications register fiber-typed selectors through WithLocaleSelector and
// WithTimezoneSelector instead.
package fiberi18n

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrymomot/localekit"
	"github.com/dmitrymomot/localekit/i18n"
)

// LocaleSelector returns the locale for a Fiber request, or an empty string
// to fall through to the extractor chain.
type LocaleSelector func(c *fiber.Ctx) string

// TimezoneSelector returns the timezone for a Fiber request, or nil to fall
// back to the Kit default.
type TimezoneSelector func(c *fiber.Ctx) *time.Location

type config struct {
	cookieName       string
	queryParamName   string
	localeSelector   LocaleSelector
	timezoneSelector TimezoneSelector
}

// Option configures the middleware.
type Option func(*config)

// WithCookieName sets the cookie checked for a locale preference.
func WithCookieName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter checked for a locale.
func WithQueryParamName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.queryParamName = name
		}
	}
}

// WithLocaleSelector registers an application locale selector, checked
// before cookie, query and Accept-Language.
func WithLocaleSelector(fn LocaleSelector) Option {
	return func(c *config) { c.localeSelector = fn }
}

// WithTimezoneSelector registers an application timezone selector.
func WithTimezoneSelector(fn TimezoneSelector) Option {
	return func(c *config) { c.timezoneSelector = fn }
}

// New returns Fiber middleware that resolves the locale and timezone for
// each request in the same priority order the Kit uses for net/http: a
// selector (registered via this package's options), cookie, query parameter,
// Accept-Language negotiation, configured default.
func New(kit *localekit.Kit, opts ...Option) fiber.Handler {
	cfg := config{
		cookieName:     "locale",
		queryParamName: "locale",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	background := context.Background()
	supported := append(kit.Locales(), kit.CurrentLocale(background))

	return func(c *fiber.Ctx) error {
		locale := resolveLocale(c, &cfg, supported, kit.CurrentLocale(background))

		var loc *time.Location
		if cfg.timezoneSelector != nil {
			loc = cfg.timezoneSelector(c)
		}
		if loc == nil {
			loc = kit.CurrentTimezone(background)
		}

		ctx := localekit.WithLocale(c.UserContext(), locale)
		ctx = localekit.WithTimezone(ctx, loc)
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func resolveLocale(c *fiber.Ctx, cfg *config, supported []string, fallback string) string {
	if cfg.localeSelector != nil {
		if locale := cfg.localeSelector(c); locale != "" {
			return i18n.NormalizeLocale(locale)
		}
	}
	if cfg.cookieName != "" {
		if locale := match(strings.TrimSpace(c.Cookies(cfg.cookieName)), supported); locale != "" {
			return locale
		}
	}
	if cfg.queryParamName != "" {
		if locale := match(strings.TrimSpace(c.Query(cfg.queryParamName)), supported); locale != "" {
			return locale
		}
	}
	if header := c.Get(fiber.HeaderAcceptLanguage); header != "" {
		if locale := localekit.NegotiateLocale(header, supported, ""); locale != "" {
			return locale
		}
	}
	return fallback
}

// match validates a locale read from the request against the supported set,
// with base-language fallback.
func match(raw string, supported []string) string {
	if raw == "" {
		return ""
	}
	norm := i18n.NormalizeLocale(raw)
	for _, s := range supported {
		if norm == s {
			return norm
		}
	}
	base := i18n.BaseLocale(norm)
	for _, s := range supported {
		if base == s {
			return base
		}
	}
	return ""
}
