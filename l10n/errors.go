package l10n

import "fmt"

// ErrInvalidLocale indicates the locale identifier could not be parsed as a
// BCP 47 language tag.
type ErrInvalidLocale struct {
	Locale string
}

func (e *ErrInvalidLocale) Error() string {
	return fmt.Sprintf("invalid locale: %s", e.Locale)
}

// ErrUnknownCurrency indicates the currency code is not a valid ISO 4217
// code.
type ErrUnknownCurrency struct {
	Code string
}

func (e *ErrUnknownCurrency) Error() string {
	return fmt.Sprintf("unknown currency code: %s", e.Code)
}
