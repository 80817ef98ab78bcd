// Package i18n provides gettext-style translation domains for Go web
// applications.
//
// A Domain is a named collection of translation catalogs loaded through an
// Adapter (in-memory map, file, directory, or any fs.FS such as an embedded
// filesystem). Raw translations are loaded once at construction; the catalog
// for each locale is compiled on first use and cached for the lifetime of
// the Domain, so two application instances never share translation state.
//
// Catalog files contain nested message maps keyed by locale:
//
//	en:
//	  welcome: "Welcome, %{name}!"
//	  items:
//	    zero: "No items"
//	    one: "%{count} item"
//	    other: "%{count} items"
//	  contexts:
//	    button:
//	      welcome: "Hi, %{name}!"
//	de:
//	  welcome: "Willkommen, %{name}!"
//
// Lookups use dot notation for nested keys and %{name} placeholders for
// substitution. Plural variants are selected with the CLDR cardinal rules of
// the locale (via golang.org/x/text), stored under the suffixes zero, one,
// two, few, many and other. Message contexts (the pgettext analogue) live
// under the reserved "contexts" section.
//
// Basic usage:
//
//	adapter, _ := i18n.NewDirAdapter("./translations", nil)
//	domain, err := i18n.NewDomain(ctx, adapter,
//	    i18n.WithDefaultLocale("en"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	domain.T("de", "welcome", "name", "Peter") // "Willkommen, Peter!"
//	domain.N("en", "items", 3)                 // "3 items"
//	domain.P("en", "button", "welcome", "name", "Ann")
//
// Requests for a regional locale are satisfied by the base language catalog
// when no regional one exists: "de-DE" falls back to "de". Missing
// translations fall back to the key itself by default, so untranslated UI
// stays readable; WithFallbackToKey(false) turns that off and
// WithMissingLogging(true) reports gaps through slog.
//
// LazyString defers resolution until a request locale is known, for
// user-facing strings declared at package init time.
package i18n
