// Package localekit adds internationalization and localization facilities to
// Go web applications: per-request locale and timezone selection,
// gettext-style translation domains with cached catalogs, and locale-aware
// date, number and currency formatting.
//
// The Kit is the application-level binding. It owns the translation domains,
// resolves a locale and timezone for every request, and exposes convenience
// operations that read the request context:
//
//	adapter, _ := i18n.NewDirAdapter("./translations", nil)
//	domain, _ := i18n.NewDomain(ctx, adapter, i18n.WithDefaultLocale("en"))
//
//	kit, err := localekit.New(ctx, localekit.WithDomain(domain))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Use(kit.Middleware())
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    ctx := r.Context()
//	    fmt.Fprintln(w, kit.T(ctx, "welcome", "name", "Peter"))
//	    fmt.Fprintln(w, kit.FormatDatetime(ctx, time.Now(), ""))
//	})
//
// Locale resolution checks, in order: the registered locale selector, the
// extractor chain (cookie, query parameter, Accept-Language negotiation),
// then the configured default. Applications that know better than the
// browser register selectors:
//
//	kit.SetLocaleSelector(func(r *http.Request) string {
//	    return userFromRequest(r).Locale
//	})
//	kit.SetTimezoneSelector(func(r *http.Request) *time.Location {
//	    return userFromRequest(r).Timezone
//	})
//
// Outside a request, or to render in a specific locale regardless of the
// request (a notification email in the recipient's language), override the
// context:
//
//	ctx = localekit.WithLocale(ctx, "de")
//	body := kit.T(ctx, "email.subject")
//
// Configuration can come from the environment through LoadConfig, which
// reads LOCALEKIT_* variables with godotenv bootstrap.
//
// The i18n subpackage holds the translation machinery, the l10n subpackage
// the formatting machinery; both are usable on their own. The fiberi18n
// subpackage adapts the Kit to Fiber applications.
package localekit
