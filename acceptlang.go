package localekit

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header processing. RFC 7231 sets no limit,
// but 4KB covers every legitimate client while bounding work on hostile
// input.
const maxAcceptLanguageLength = 4096

type weightedLocale struct {
	locale string
	q      float64
}

// acceptedLocales parses an Accept-Language header into locales ordered by
// quality value, per RFC 7231. Malformed entries are skipped rather than
// failing the whole header.
func acceptedLocales(header string) []weightedLocale {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var locales []weightedLocale
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		localeAndQ := strings.Split(part, ";")
		locale := strings.ToLower(strings.TrimSpace(localeAndQ[0]))
		q := 1.0
		if len(localeAndQ) > 1 {
			qPart := strings.TrimSpace(localeAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if locale != "" {
			locales = append(locales, weightedLocale{locale: locale, q: q})
		}
	}

	slices.SortStableFunc(locales, func(a, b weightedLocale) int {
		return cmp.Compare(b.q, a.q)
	})
	return locales
}

// NegotiateLocale picks the best supported locale for an Accept-Language
// header. Exact matches are tried across all entries first, then base
// language matches (en-US satisfied by en), so quality ordering is respected
// within each phase. It returns fallback when nothing matches.
func NegotiateLocale(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}

	normalized := make([]string, len(supported))
	for i, locale := range supported {
		normalized[i] = strings.ToLower(locale)
	}

	locales := acceptedLocales(header)

	for _, wl := range locales {
		if slices.Contains(normalized, wl.locale) {
			return wl.locale
		}
	}
	for _, wl := range locales {
		if idx := strings.Index(wl.locale, "-"); idx > 0 {
			if base := wl.locale[:idx]; slices.Contains(normalized, base) {
				return base
			}
		}
	}
	return fallback
}
