package i18n

import (
	"regexp"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// contextSection is the reserved top-level key that holds message-context
// qualified translations (the gettext msgctxt analogue):
//
//	en:
//	  open: "Open"
//	  contexts:
//	    menu:
//	      open: "Open file"
const contextSection = "contexts"

// Catalog holds the compiled translations of a single locale. Catalogs are
// immutable after compilation and safe to share between goroutines.
type Catalog struct {
	locale   string // normalized identifier, e.g. "de-de"
	tag      language.Tag
	messages map[string]any
}

func newCatalog(locale string, messages map[string]any) *Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Catalog{
		locale:   locale,
		tag:      tag,
		messages: messages,
	}
}

// Locale returns the normalized locale identifier the catalog was compiled
// for.
func (c *Catalog) Locale() string { return c.locale }

// Tag returns the BCP 47 language tag of the catalog.
func (c *Catalog) Tag() language.Tag { return c.tag }

// lookup traverses the nested message map using dot-separated keys, so
// "datetime.days.other" visits messages["datetime"]["days"]["other"].
func (c *Catalog) lookup(key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := c.messages

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		childMap, ok := next.(map[string]any)
		if !ok {
			// YAML decoders may produce map[any]any for nested nodes.
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}
			childMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					childMap[ks] = v
				}
			}
		}
		current = childMap
	}
	return nil, false
}

// Message returns the string translation stored under key.
func (c *Catalog) Message(key string) (string, bool) {
	val, ok := c.lookup(key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// pluralMessage selects the plural variant of key for count n. The candidate
// suffixes are tried in order: "zero" for n==0, then the CLDR cardinal form
// of the catalog's language, then "other", then the bare key.
func (c *Catalog) pluralMessage(key string, n int) (string, bool) {
	for _, suffix := range c.pluralSuffixes(n) {
		if msg, ok := c.Message(key + "." + suffix); ok {
			return msg, true
		}
	}
	return c.Message(key)
}

var pluralFormSuffix = map[plural.Form]string{
	plural.Zero:  "zero",
	plural.One:   "one",
	plural.Two:   "two",
	plural.Few:   "few",
	plural.Many:  "many",
	plural.Other: "other",
}

func (c *Catalog) pluralSuffixes(n int) []string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	suffixes := make([]string, 0, 3)
	if n == 0 {
		suffixes = append(suffixes, "zero")
	}

	form := plural.Cardinal.MatchPlural(c.tag, abs, 0, 0, 0, 0)
	if s := pluralFormSuffix[form]; s != "" && !contains(suffixes, s) {
		suffixes = append(suffixes, s)
	}
	if !contains(suffixes, "other") {
		suffixes = append(suffixes, "other")
	}
	return suffixes
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// placeholderRe matches named placeholders of the form %{name}.
var placeholderRe = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders with values from the key-value
// argument list. Placeholders without a matching argument are left intact, so
// a template is never mangled by a lookup with no arguments.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// NormalizeLocale canonicalizes locale identifiers for catalog lookups:
// lowercased, with underscores replaced by hyphens, so "de_DE", "de-DE" and
// "DE-de" all resolve to "de-de".
func NormalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// BaseLocale strips the region subtag: "de-de" becomes "de". It returns the
// input unchanged when there is no region part.
func BaseLocale(locale string) string {
	if idx := strings.Index(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return locale
}
