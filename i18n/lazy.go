package i18n

import "context"

// LazyString defers a translation lookup until the active locale is known.
// It is the lazy-gettext analogue: declare user-facing strings at package
// init time and resolve them per request.
//
//	var yes = domain.Lazy("answers.yes")
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    fmt.Fprint(w, yes.Resolve(r.Context()))
//	}
type LazyString struct {
	domain *Domain
	msgctx string
	key    string
	plural bool
	n      int
	args   []string
}

// Lazy creates a lazily resolved translation for the key.
func (d *Domain) Lazy(key string, args ...string) LazyString {
	return LazyString{domain: d, key: key, args: args}
}

// LazyP creates a lazily resolved message-context qualified translation.
func (d *Domain) LazyP(msgctx, key string, args ...string) LazyString {
	return LazyString{domain: d, msgctx: msgctx, key: key, args: args}
}

// LazyN creates a lazily resolved pluralized translation.
func (d *Domain) LazyN(key string, n int, args ...string) LazyString {
	return LazyString{domain: d, key: key, plural: true, n: n, args: args}
}

// Resolve translates against the locale carried by the context, falling back
// to the domain default. Resolving the same LazyString under different
// locales yields different translations.
func (s LazyString) Resolve(ctx context.Context) string {
	if s.domain == nil {
		return s.key
	}
	return s.ResolveLocale(localeOrDefault(ctx, s.domain.defaultLocale))
}

// ResolveLocale translates against an explicit locale.
func (s LazyString) ResolveLocale(locale string) string {
	switch {
	case s.domain == nil:
		return s.key
	case s.plural && s.msgctx != "":
		return s.domain.NP(locale, s.msgctx, s.key, s.n, s.args...)
	case s.plural:
		return s.domain.N(locale, s.key, s.n, s.args...)
	case s.msgctx != "":
		return s.domain.P(locale, s.msgctx, s.key, s.args...)
	default:
		return s.domain.T(locale, s.key, s.args...)
	}
}

// String resolves with the domain's default locale. Prefer Resolve when a
// request context is available.
func (s LazyString) String() string {
	if s.domain == nil {
		return s.key
	}
	return s.ResolveLocale(s.domain.defaultLocale)
}
