package localekit

import (
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/localekit/i18n"
)

// maxLocaleLength bounds locale identifiers read from requests; RFC 5646
// recommends 35 characters as the practical maximum.
const maxLocaleLength = 35

// LocaleExtractor extracts a locale identifier from an HTTP request,
// returning an empty string when the request carries none.
type LocaleExtractor func(r *http.Request) string

// localeValidator normalizes and validates locale identifiers read from
// untrusted request data against the set of supported locales.
type localeValidator struct {
	supported []string
}

func newLocaleValidator(supported []string) *localeValidator {
	normalized := make([]string, len(supported))
	for i, locale := range supported {
		normalized[i] = i18n.NormalizeLocale(locale)
	}
	return &localeValidator{supported: normalized}
}

func (v *localeValidator) validate(locale string) string {
	if locale == "" || len(locale) > maxLocaleLength {
		return ""
	}
	norm := i18n.NormalizeLocale(locale)
	if len(v.supported) == 0 {
		return norm
	}
	if slices.Contains(v.supported, norm) {
		return norm
	}
	if base := i18n.BaseLocale(norm); base != norm && slices.Contains(v.supported, base) {
		return base
	}
	return ""
}

// ExtractorConfig configures the default locale extractor chain.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	Supported      []string
}

// ExtractorOption configures DefaultLocaleExtractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie checked for a locale preference.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter checked for a locale.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLocales restricts extraction to the given locales; anything
// else read from the request is discarded.
func WithSupportedLocales(locales ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(locales) > 0 {
			c.Supported = locales
		}
	}
}

// DefaultLocaleExtractor checks request sources in priority order: cookie,
// query parameter, then Accept-Language negotiation. Explicit user choices
// (cookie, query) outrank browser preferences. It returns the first
// validated locale, or an empty string so the caller applies its default.
func DefaultLocaleExtractor(opts ...ExtractorOption) LocaleExtractor {
	config := &ExtractorConfig{
		CookieName:     "locale",
		QueryParamName: "locale",
	}
	for _, opt := range opts {
		opt(config)
	}
	validator := newLocaleValidator(config.Supported)

	return func(r *http.Request) string {
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if locale := validator.validate(strings.TrimSpace(cookie.Value)); locale != "" {
					return locale
				}
			}
		}

		if config.QueryParamName != "" {
			if raw := strings.TrimSpace(r.URL.Query().Get(config.QueryParamName)); raw != "" {
				if locale := validator.validate(raw); locale != "" {
					return locale
				}
			}
		}

		if header := r.Header.Get("Accept-Language"); header != "" {
			if len(config.Supported) > 0 {
				return NegotiateLocale(header, config.Supported, "")
			}
			if locales := acceptedLocales(header); len(locales) > 0 {
				return i18n.NormalizeLocale(locales[0].locale)
			}
		}
		return ""
	}
}
