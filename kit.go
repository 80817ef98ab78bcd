package localekit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/localekit/i18n"
)

// LocaleSelector returns the locale for a request, or an empty string to let
// the default extractor chain decide. Applications register one to derive
// the locale from their own state, typically the authenticated user's
// profile.
type LocaleSelector func(r *http.Request) string

// TimezoneSelector returns the timezone for a request, or nil to fall back
// to the configured default.
type TimezoneSelector func(r *http.Request) *time.Location

// Kit binds locale selection, translation domains and locale-aware
// formatting to an application instance. Each Kit owns its domains and their
// catalog caches; two Kits never share translation state.
type Kit struct {
	cfg       Config
	logger    *slog.Logger
	defaultTZ *time.Location

	mu               sync.RWMutex
	localeSelector   LocaleSelector
	timezoneSelector TimezoneSelector
	extractor        LocaleExtractor
	domains          map[string]*i18n.Domain
	defaultDomain    string
	dateFormats      map[string]string
}

// KitOption configures a Kit.
type KitOption func(*Kit)

// WithConfig supplies the configuration, typically from LoadConfig.
func WithConfig(cfg Config) KitOption {
	return func(k *Kit) { k.cfg = cfg }
}

// WithLogger provides a logger. A discard logger is used when none is set.
func WithLogger(logger *slog.Logger) KitOption {
	return func(k *Kit) {
		if logger != nil {
			k.logger = logger
		}
	}
}

// WithDomain registers a translation domain and makes it the Kit default.
func WithDomain(d *i18n.Domain) KitOption {
	return func(k *Kit) {
		if d != nil {
			k.domains[d.Name()] = d
			k.defaultDomain = d.Name()
		}
	}
}

// WithExtraDomain registers an additional named translation domain without
// changing the default.
func WithExtraDomain(d *i18n.Domain) KitOption {
	return func(k *Kit) {
		if d != nil {
			k.domains[d.Name()] = d
		}
	}
}

// WithLocaleExtractor replaces the default cookie/query/Accept-Language
// extractor chain.
func WithLocaleExtractor(extractor LocaleExtractor) KitOption {
	return func(k *Kit) {
		if extractor != nil {
			k.extractor = extractor
		}
	}
}

// WithKitDateFormats overrides date/time format selection for every
// formatter the Kit creates; see l10n.WithDateFormats for the key forms.
func WithKitDateFormats(formats map[string]string) KitOption {
	return func(k *Kit) {
		for key, val := range formats {
			k.dateFormats[key] = val
		}
	}
}

// New creates a Kit. When the configuration names a translations directory
// and no domain was supplied, the default domain is loaded from it;
// otherwise a Kit without catalogs still works and translates every key to
// itself.
func New(ctx context.Context, opts ...KitOption) (*Kit, error) {
	k := &Kit{
		cfg: Config{
			DefaultLocale:   i18n.DefaultLocale,
			DefaultTimezone: "UTC",
			DefaultDomain:   i18n.DefaultDomainName,
			CookieName:      "locale",
			QueryParamName:  "locale",
		},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		domains:     make(map[string]*i18n.Domain),
		dateFormats: make(map[string]string),
	}
	for _, opt := range opts {
		opt(k)
	}

	tz, err := time.LoadLocation(k.cfg.DefaultTimezone)
	if err != nil {
		return nil, errors.Join(ErrUnknownTimezone, err)
	}
	k.defaultTZ = tz

	if k.defaultDomain == "" {
		if err := k.loadDefaultDomain(ctx); err != nil {
			return nil, err
		}
	}

	if k.extractor == nil {
		supported := append(k.DefaultDomain().Locales(), i18n.NormalizeLocale(k.cfg.DefaultLocale))
		k.extractor = DefaultLocaleExtractor(
			WithCookieName(k.cfg.CookieName),
			WithQueryParamName(k.cfg.QueryParamName),
			WithSupportedLocales(supported...),
		)
	}

	k.logger.InfoContext(ctx, "localekit initialized",
		slog.String("default_locale", k.cfg.DefaultLocale),
		slog.String("default_timezone", k.cfg.DefaultTimezone),
		slog.String("default_domain", k.defaultDomain))
	return k, nil
}

func (k *Kit) loadDefaultDomain(ctx context.Context) error {
	var adapter i18n.Adapter = &i18n.MapAdapter{}
	if k.cfg.TranslationsDir != "" {
		dirAdapter, err := i18n.NewDirAdapter(k.cfg.TranslationsDir, nil)
		if err != nil {
			return err
		}
		adapter = dirAdapter
	}

	d, err := i18n.NewDomain(ctx, adapter,
		i18n.WithName(k.cfg.DefaultDomain),
		i18n.WithDefaultLocale(k.cfg.DefaultLocale),
		i18n.WithLogger(k.logger),
	)
	if err != nil {
		return fmt.Errorf("loading default domain: %w", err)
	}
	k.domains[d.Name()] = d
	k.defaultDomain = d.Name()
	return nil
}

// SetLocaleSelector registers the locale selector callback. At most one
// selector may be registered per Kit.
func (k *Kit) SetLocaleSelector(fn LocaleSelector) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.localeSelector != nil {
		return fmt.Errorf("locale selector: %w", ErrSelectorAlreadyRegistered)
	}
	k.localeSelector = fn
	return nil
}

// SetTimezoneSelector registers the timezone selector callback. At most one
// selector may be registered per Kit.
func (k *Kit) SetTimezoneSelector(fn TimezoneSelector) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.timezoneSelector != nil {
		return fmt.Errorf("timezone selector: %w", ErrSelectorAlreadyRegistered)
	}
	k.timezoneSelector = fn
	return nil
}

// ResolveLocale runs the selector chain for a request: the registered locale
// selector, then the extractor chain, then the configured default. The
// result is always normalized.
func (k *Kit) ResolveLocale(r *http.Request) string {
	k.mu.RLock()
	selector := k.localeSelector
	extractor := k.extractor
	k.mu.RUnlock()

	if selector != nil {
		if locale := selector(r); locale != "" {
			return i18n.NormalizeLocale(locale)
		}
	}
	if extractor != nil {
		if locale := extractor(r); locale != "" {
			return locale
		}
	}
	return i18n.NormalizeLocale(k.cfg.DefaultLocale)
}

// ResolveTimezone runs the timezone selector for a request, falling back to
// the configured default.
func (k *Kit) ResolveTimezone(r *http.Request) *time.Location {
	k.mu.RLock()
	selector := k.timezoneSelector
	k.mu.RUnlock()

	if selector != nil {
		if loc := selector(r); loc != nil {
			return loc
		}
	}
	return k.defaultTZ
}

// CurrentLocale returns the locale resolved for the context, or the
// configured default outside a request.
func (k *Kit) CurrentLocale(ctx context.Context) string {
	if locale := Locale(ctx); locale != "" {
		return locale
	}
	return i18n.NormalizeLocale(k.cfg.DefaultLocale)
}

// CurrentTimezone returns the timezone resolved for the context, or the
// configured default outside a request.
func (k *Kit) CurrentTimezone(ctx context.Context) *time.Location {
	if loc := Timezone(ctx); loc != nil {
		return loc
	}
	return k.defaultTZ
}

// RegisterDomain adds a named translation domain to the Kit.
func (k *Kit) RegisterDomain(d *i18n.Domain) {
	if d == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.domains[d.Name()] = d
}

// Domain returns a registered domain by name.
func (k *Kit) Domain(name string) (*i18n.Domain, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	d, ok := k.domains[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDomain, name)
	}
	return d, nil
}

// DefaultDomain returns the domain Kit-level translation operations use.
func (k *Kit) DefaultDomain() *i18n.Domain {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.domains[k.defaultDomain]
}

// SetDefaultDomain switches Kit-level translation operations to a registered
// domain.
func (k *Kit) SetDefaultDomain(name string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.domains[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDomain, name)
	}
	k.defaultDomain = name
	return nil
}

// Locales lists the locales the default domain has catalogs for.
func (k *Kit) Locales() []string {
	return k.DefaultDomain().Locales()
}

// SetDateFormat overrides one date/time format selection entry at runtime;
// see l10n.WithDateFormats for the key forms.
func (k *Kit) SetDateFormat(key, value string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.dateFormats[key] = value
}
