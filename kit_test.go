package localekit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit"
	"github.com/dmitrymomot/localekit/i18n"
)

func testDomain(t *testing.T, name string) *i18n.Domain {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"greeting": "Hello, %{name}!",
			"items": map[string]any{
				"one":   "%{count} item",
				"other": "%{count} items",
			},
		},
		"de": {
			"greeting": "Hallo, %{name}!",
		},
	}}
	d, err := i18n.NewDomain(t.Context(), adapter, i18n.WithName(name))
	require.NoError(t, err)
	return d
}

func newTestKit(t *testing.T, opts ...localekit.KitOption) *localekit.Kit {
	t.Helper()
	opts = append([]localekit.KitOption{localekit.WithDomain(testDomain(t, "messages"))}, opts...)
	kit, err := localekit.New(t.Context(), opts...)
	require.NoError(t, err)
	return kit
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("works without any configuration", func(t *testing.T) {
		t.Parallel()
		kit, err := localekit.New(t.Context())
		require.NoError(t, err)
		// No catalogs loaded; keys translate to themselves.
		assert.Equal(t, "missing.key", kit.T(context.Background(), "missing.key"))
		assert.Equal(t, "en", kit.CurrentLocale(context.Background()))
	})

	t.Run("rejects unknown default timezone", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.New(t.Context(), localekit.WithConfig(localekit.Config{
			DefaultLocale:   "en",
			DefaultTimezone: "Mars/Olympus_Mons",
			DefaultDomain:   "messages",
		}))
		require.ErrorIs(t, err, localekit.ErrUnknownTimezone)
	})

	t.Run("uses supplied domain as default", func(t *testing.T) {
		t.Parallel()
		kit := newTestKit(t)
		assert.Equal(t, "messages", kit.DefaultDomain().Name())
		assert.Equal(t, []string{"de", "en"}, kit.Locales())
	})
}

func TestKitSelectors(t *testing.T) {
	t.Parallel()

	t.Run("locale selector outranks request data", func(t *testing.T) {
		t.Parallel()
		kit := newTestKit(t)
		require.NoError(t, kit.SetLocaleSelector(func(*http.Request) string { return "de" }))

		r := httptest.NewRequest(http.MethodGet, "/?locale=en", nil)
		assert.Equal(t, "de", kit.ResolveLocale(r))
	})

	t.Run("second locale selector registration fails", func(t *testing.T) {
		t.Parallel()
		kit := newTestKit(t)
		require.NoError(t, kit.SetLocaleSelector(func(*http.Request) string { return "de" }))
		err := kit.SetLocaleSelector(func(*http.Request) string { return "en" })
		require.ErrorIs(t, err, localekit.ErrSelectorAlreadyRegistered)
	})

	t.Run("empty selector result falls through to extractor", func(t *testing.T) {
		t.Parallel()
		kit := newTestKit(t)
		require.NoError(t, kit.SetLocaleSelector(func(*http.Request) string { return "" }))

		r := httptest.NewRequest(http.MethodGet, "/?locale=de", nil)
		assert.Equal(t, "de", kit.ResolveLocale(r))
	})

	t.Run("bare request resolves to default locale", func(t *testing.T) {
		t.Parallel()
		kit := newTestKit(t)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "en", kit.ResolveLocale(r))
	})

	t.Run("timezone selector", func(t *testing.T) {
		t.Parallel()
		kit := newTestKit(t)
		vienna, err := time.LoadLocation("Europe/Vienna")
		require.NoError(t, err)
		require.NoError(t, kit.SetTimezoneSelector(func(*http.Request) *time.Location { return vienna }))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, vienna, kit.ResolveTimezone(r))

		err = kit.SetTimezoneSelector(func(*http.Request) *time.Location { return nil })
		require.ErrorIs(t, err, localekit.ErrSelectorAlreadyRegistered)
	})

	t.Run("nil timezone from selector falls back to default", func(t *testing.T) {
		t.Parallel()
		kit := newTestKit(t)
		require.NoError(t, kit.SetTimezoneSelector(func(*http.Request) *time.Location { return nil }))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, time.UTC, kit.ResolveTimezone(r))
	})
}

func TestKitDomains(t *testing.T) {
	t.Parallel()

	t.Run("register and look up named domains", func(t *testing.T) {
		t.Parallel()
		kit := newTestKit(t)
		kit.RegisterDomain(testDomain(t, "emails"))

		d, err := kit.Domain("emails")
		require.NoError(t, err)
		assert.Equal(t, "emails", d.Name())

		_, err = kit.Domain("nope")
		require.ErrorIs(t, err, localekit.ErrUnknownDomain)
	})

	t.Run("switch default domain", func(t *testing.T) {
		t.Parallel()
		kit := newTestKit(t)
		kit.RegisterDomain(testDomain(t, "emails"))

		require.NoError(t, kit.SetDefaultDomain("emails"))
		assert.Equal(t, "emails", kit.DefaultDomain().Name())

		err := kit.SetDefaultDomain("nope")
		require.ErrorIs(t, err, localekit.ErrUnknownDomain)
	})

	t.Run("extra domain does not change the default", func(t *testing.T) {
		t.Parallel()
		kit, err := localekit.New(t.Context(),
			localekit.WithDomain(testDomain(t, "messages")),
			localekit.WithExtraDomain(testDomain(t, "emails")),
		)
		require.NoError(t, err)
		assert.Equal(t, "messages", kit.DefaultDomain().Name())
	})
}

func TestKitTranslate(t *testing.T) {
	t.Parallel()

	kit := newTestKit(t)

	t.Run("uses context locale", func(t *testing.T) {
		t.Parallel()
		ctx := localekit.WithLocale(context.Background(), "de")
		assert.Equal(t, "Hallo, Anna!", kit.T(ctx, "greeting", "name", "Anna"))
	})

	t.Run("defaults outside a request", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello, Anna!", kit.T(context.Background(), "greeting", "name", "Anna"))
	})

	t.Run("plural through the kit", func(t *testing.T) {
		t.Parallel()
		ctx := localekit.WithLocale(context.Background(), "en")
		assert.Equal(t, "3 items", kit.N(ctx, "items", 3))
		assert.Equal(t, "1 item", kit.N(ctx, "items", 1))
	})

	t.Run("explicit default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "fallback", kit.Td(context.Background(), "missing", "fallback"))
	})

	t.Run("lazy resolves against the calling context", func(t *testing.T) {
		t.Parallel()
		lazy := kit.Lazy("greeting", "name", "Anna")
		assert.Equal(t, "Hallo, Anna!", lazy.Resolve(localekit.WithLocale(context.Background(), "de")))
		assert.Equal(t, "Hello, Anna!", lazy.Resolve(context.Background()))
	})
}
