package localekit

import (
	"context"

	"github.com/dmitrymomot/localekit/i18n"
)

// T translates a key in the default domain using the context locale.
func (k *Kit) T(ctx context.Context, key string, args ...string) string {
	return k.DefaultDomain().T(k.CurrentLocale(ctx), key, args...)
}

// N translates a pluralized key in the default domain using the context
// locale.
func (k *Kit) N(ctx context.Context, key string, n int, args ...string) string {
	return k.DefaultDomain().N(k.CurrentLocale(ctx), key, n, args...)
}

// P translates a message-context qualified key in the default domain using
// the context locale.
func (k *Kit) P(ctx context.Context, msgctx, key string, args ...string) string {
	return k.DefaultDomain().P(k.CurrentLocale(ctx), msgctx, key, args...)
}

// NP translates a message-context qualified pluralized key in the default
// domain using the context locale.
func (k *Kit) NP(ctx context.Context, msgctx, key string, n int, args ...string) string {
	return k.DefaultDomain().NP(k.CurrentLocale(ctx), msgctx, key, n, args...)
}

// Td translates a key with an explicit default in the default domain using
// the context locale.
func (k *Kit) Td(ctx context.Context, key, def string, args ...string) string {
	return k.DefaultDomain().Td(k.CurrentLocale(ctx), key, def, args...)
}

// Lazy creates a lazily resolved translation bound to the default domain at
// call time.
func (k *Kit) Lazy(key string, args ...string) i18n.LazyString {
	return k.DefaultDomain().Lazy(key, args...)
}

// LazyP creates a lazily resolved message-context qualified translation.
func (k *Kit) LazyP(msgctx, key string, args ...string) i18n.LazyString {
	return k.DefaultDomain().LazyP(msgctx, key, args...)
}
