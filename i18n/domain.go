package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"sync"
)

// DefaultLocale is used when no locale has been resolved for a request and
// no other default was configured.
const DefaultLocale = "en"

// DefaultDomainName is the name of the implicit message domain, matching the
// conventional gettext default.
const DefaultDomainName = "messages"

// Domain is a named collection of translation catalogs: the gettext message
// domain. Raw translations are loaded once through an Adapter; catalogs are
// compiled per locale on first use and cached for the lifetime of the
// Domain. Two Domain instances never share caches.
type Domain struct {
	name          string
	defaultLocale string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	adapter       Adapter

	mu     sync.RWMutex
	source map[string]map[string]any // raw translations keyed by normalized locale
	cache  map[string]*Catalog       // compiled catalogs, populated on first use
}

// NewDomain creates a message domain and loads its raw translations from the
// adapter. Catalog compilation is deferred until a locale is first used.
func NewDomain(ctx context.Context, adapter Adapter, opts ...DomainOption) (*Domain, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	d := &Domain{
		name:          DefaultDomainName,
		defaultLocale: DefaultLocale,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
		cache:         make(map[string]*Catalog),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.load(ctx); err != nil {
		return nil, err
	}
	d.logger.InfoContext(ctx, "translation catalogs loaded",
		slog.String("domain", d.name),
		slog.Any("locales", d.Locales()))
	return d, nil
}

func (d *Domain) load(ctx context.Context) error {
	raw, err := d.adapter.Load(ctx)
	if err != nil {
		return err
	}

	source := make(map[string]map[string]any, len(raw))
	for locale, msgs := range raw {
		norm := NormalizeLocale(locale)
		if norm == "" {
			return fmt.Errorf("empty locale identifier in catalog data")
		}
		if msgs == nil {
			return fmt.Errorf("nil message map for locale %q", locale)
		}
		source[norm] = msgs
	}

	d.mu.Lock()
	d.source = source
	d.cache = make(map[string]*Catalog)
	d.mu.Unlock()
	return nil
}

// Reload re-runs the adapter and drops all compiled catalogs. Lookups in
// flight keep using the catalogs they already hold.
func (d *Domain) Reload(ctx context.Context) error {
	return d.load(ctx)
}

// Name returns the domain name.
func (d *Domain) Name() string { return d.name }

// DefaultLocale returns the locale used when lookups pass an empty one.
func (d *Domain) DefaultLocale() string { return d.defaultLocale }

// Locales returns the sorted normalized locale identifiers the domain has
// translations for.
func (d *Domain) Locales() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	locales := make([]string, 0, len(d.source))
	for locale := range d.source {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Catalog returns the compiled catalog for the locale, populating the cache
// on first use. Requests for a regional locale fall back to the base
// language catalog ("de-DE" is satisfied by "de"). It returns nil when the
// domain has no translations for the locale at all.
func (d *Domain) Catalog(locale string) *Catalog {
	norm := NormalizeLocale(locale)
	if norm == "" {
		norm = NormalizeLocale(d.defaultLocale)
	}

	d.mu.RLock()
	c, ok := d.cache[norm]
	d.mu.RUnlock()
	if ok {
		return c
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.cache[norm]; ok {
		return c
	}

	msgs, ok := d.source[norm]
	if !ok {
		if base := BaseLocale(norm); base != norm {
			msgs, ok = d.source[base]
		}
	}
	if !ok {
		return nil
	}

	c = newCatalog(norm, msgs)
	d.cache[norm] = c
	return c
}

// Has reports whether a translation exists for the locale and key.
func (d *Domain) Has(locale, key string) bool {
	c := d.Catalog(locale)
	if c == nil {
		return false
	}
	_, ok := c.lookup(key)
	return ok
}

// T translates a key for the given locale, substituting %{name} placeholders
// from the variadic key-value argument list:
//
//	d.T("de", "welcome", "name", "Peter") // "Willkommen, Peter!"
//
// A missing locale or key falls back to the key itself (when fallback-to-key
// is enabled, the default) so untranslated UI degrades to readable English
// keys instead of empty strings.
func (d *Domain) T(locale, key string, args ...string) string {
	c := d.Catalog(locale)
	if c == nil {
		return d.missing(locale, key, args)
	}

	msg, ok := c.Message(key)
	if !ok {
		return d.missing(locale, key, args)
	}
	return substitute(msg, args)
}

// Td translates a key with an explicit default used when the translation is
// missing, instead of falling back to the key.
func (d *Domain) Td(locale, key, def string, args ...string) string {
	c := d.Catalog(locale)
	if c != nil {
		if msg, ok := c.Message(key); ok {
			return substitute(msg, args)
		}
	}
	if d.logMissing {
		d.logger.Warn("translation not found", "domain", d.name, "locale", locale, "key", key)
	}
	return substitute(def, args)
}

// N translates a key with pluralization. The plural variant is selected by
// the CLDR cardinal rules of the locale, stored under suffixed keys:
//
//	items:
//	  zero: "No items"
//	  one: "%{count} item"
//	  other: "%{count} items"
//
// The count is always available to the template as %{count} unless the
// arguments already carry one.
func (d *Domain) N(locale, key string, n int, args ...string) string {
	c := d.Catalog(locale)
	if c == nil {
		return d.missing(locale, key, args)
	}

	msg, ok := c.pluralMessage(key, n)
	if !ok {
		if d.logMissing {
			d.logger.Warn("plural translation not found", "domain", d.name, "locale", locale, "key", key, "n", n)
		}
		if d.fallbackToKey {
			return substitute(key, args)
		}
		return ""
	}
	return substitute(msg, withCount(args, n))
}

// P translates a message-context qualified key (the pgettext analogue).
// Context-scoped messages live under the reserved "contexts" section; when
// the qualified key is absent, the unqualified key is tried before the usual
// missing-translation fallback.
func (d *Domain) P(locale, msgctx, key string, args ...string) string {
	c := d.Catalog(locale)
	if c == nil {
		return d.missing(locale, key, args)
	}

	if msg, ok := c.Message(contextSection + "." + msgctx + "." + key); ok {
		return substitute(msg, args)
	}
	if msg, ok := c.Message(key); ok {
		return substitute(msg, args)
	}
	return d.missing(locale, key, args)
}

// NP translates a message-context qualified key with pluralization.
func (d *Domain) NP(locale, msgctx, key string, n int, args ...string) string {
	c := d.Catalog(locale)
	if c == nil {
		return d.missing(locale, key, args)
	}

	if msg, ok := c.pluralMessage(contextSection+"."+msgctx+"."+key, n); ok {
		return substitute(msg, withCount(args, n))
	}
	if msg, ok := c.pluralMessage(key, n); ok {
		return substitute(msg, withCount(args, n))
	}
	return d.missing(locale, key, args)
}

// Tc translates a key using the locale stored in the context by the
// middleware, falling back to the domain default outside a request.
func (d *Domain) Tc(ctx context.Context, key string, args ...string) string {
	return d.T(localeOrDefault(ctx, d.defaultLocale), key, args...)
}

// Nc is the context-locale variant of N.
func (d *Domain) Nc(ctx context.Context, key string, n int, args ...string) string {
	return d.N(localeOrDefault(ctx, d.defaultLocale), key, n, args...)
}

// Pc is the context-locale variant of P.
func (d *Domain) Pc(ctx context.Context, msgctx, key string, args ...string) string {
	return d.P(localeOrDefault(ctx, d.defaultLocale), msgctx, key, args...)
}

// ExportJSON returns the raw translations of a locale as JSON, for handing
// catalogs to client-side code.
func (d *Domain) ExportJSON(locale string) (string, error) {
	norm := NormalizeLocale(locale)

	d.mu.RLock()
	msgs, ok := d.source[norm]
	if !ok {
		if base := BaseLocale(norm); base != norm {
			msgs, ok = d.source[base]
		}
	}
	d.mu.RUnlock()

	if !ok {
		return "", &ErrLocaleNotSupported{Locale: locale}
	}
	bytes, err := json.Marshal(msgs)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(bytes), nil
}

func (d *Domain) missing(locale, key string, args []string) string {
	if d.logMissing {
		d.logger.Warn("translation not found", "domain", d.name, "locale", locale, "key", key)
	}
	if d.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

func withCount(args []string, n int) []string {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == "count" {
			return args
		}
	}
	out := make([]string, len(args), len(args)+2)
	copy(out, args)
	return append(out, "count", strconv.Itoa(n))
}

func localeOrDefault(ctx context.Context, def string) string {
	if locale := GetLocale(ctx); locale != "" {
		return locale
	}
	return def
}
