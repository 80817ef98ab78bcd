package i18n

import (
	"io"
	"log/slog"
)

// DomainOption configures a Domain instance.
type DomainOption func(*Domain)

// WithName sets the domain name. The default is "messages".
func WithName(name string) DomainOption {
	return func(d *Domain) {
		if name != "" {
			d.name = name
		}
	}
}

// WithDefaultLocale sets the locale used when lookups pass an empty one.
func WithDefaultLocale(locale string) DomainOption {
	return func(d *Domain) {
		if locale != "" {
			d.defaultLocale = locale
		}
	}
}

// WithFallbackToKey controls whether missing translations resolve to the key
// itself. Default is true.
func WithFallbackToKey(fallback bool) DomainOption {
	return func(d *Domain) {
		d.fallbackToKey = fallback
	}
}

// WithLogger provides a logger for the domain. A discard logger is used when
// none is set.
func WithLogger(logger *slog.Logger) DomainOption {
	return func(d *Domain) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMissingLogging controls whether missing translations are logged.
// Default is false to keep hot paths quiet.
func WithMissingLogging(log bool) DomainOption {
	return func(d *Domain) {
		d.logMissing = log
	}
}

// WithNoLogging disables all domain logging.
func WithNoLogging() DomainOption {
	return func(d *Domain) {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		d.logMissing = false
	}
}
