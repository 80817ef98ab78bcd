package l10n

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/localekit/i18n"
)

// Formatter renders dates, times, numbers and currency amounts according to
// the conventions of one locale and timezone. Formatters are immutable and
// safe for concurrent use; create one per resolved request locale.
type Formatter struct {
	locale  string // normalized, e.g. "de-de"
	tag     language.Tag
	loc     *time.Location
	printer *message.Printer
	formats map[string]string // style aliases and layout overrides
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocation sets the user timezone applied before date/time formatting.
// Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithDateFormats overrides date/time format selection. Keys of the form
// "date", "time" or "datetime" alias the default style for that kind
// ("datetime" -> "long"); keys of the form "datetime.long" replace the layout
// used for that style with an explicit Go reference layout.
func WithDateFormats(formats map[string]string) Option {
	return func(f *Formatter) {
		for k, v := range formats {
			f.formats[k] = v
		}
	}
}

// New creates a Formatter for the locale. Both "de_DE" and "de-DE" forms are
// accepted. An unparseable locale yields an error; use NewOrDefault when a
// request path must not fail on malformed input.
func New(locale string, opts ...Option) (*Formatter, error) {
	norm := i18n.NormalizeLocale(locale)
	if norm == "" {
		norm = "en"
	}
	tag, err := language.Parse(norm)
	if err != nil {
		return nil, &ErrInvalidLocale{Locale: locale}
	}

	f := &Formatter{
		locale:  norm,
		tag:     tag,
		loc:     time.UTC,
		printer: message.NewPrinter(tag),
		formats: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// NewOrDefault creates a Formatter for the locale, silently degrading to
// English when the locale cannot be parsed. Request handling paths use this
// so a malformed cookie never turns into a 500.
func NewOrDefault(locale string, opts ...Option) *Formatter {
	f, err := New(locale, opts...)
	if err != nil {
		f, _ = New("en", opts...)
	}
	return f
}

// Locale returns the normalized locale identifier.
func (f *Formatter) Locale() string { return f.locale }

// Tag returns the BCP 47 language tag.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Location returns the user timezone.
func (f *Formatter) Location() *time.Location { return f.loc }
