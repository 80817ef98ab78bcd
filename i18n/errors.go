package i18n

import (
	"errors"
	"fmt"
)

// Sentinel errors are joined with their underlying causes so callers can use
// errors.Is for classification while keeping the original failure for logs.
var (
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrNoTranslations      = errors.New("no translations loaded")
	ErrFailedToParseJSON   = errors.New("failed to parse JSON catalog")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML catalog")
	ErrFailedToReadFile    = errors.New("failed to read catalog file")
	ErrFailedToParseFile   = errors.New("failed to parse catalog file")
	ErrFailedToReadDir     = errors.New("failed to read catalog directory")
	ErrLoadCancelled       = errors.New("catalog loading cancelled")
	ErrFailedToMarshalJSON = errors.New("failed to marshal catalog to JSON")
)

// ErrLocaleNotSupported indicates that no catalog is available for the
// requested locale, not even through base-language fallback.
type ErrLocaleNotSupported struct {
	Locale string
}

func (e *ErrLocaleNotSupported) Error() string {
	return fmt.Sprintf("locale not supported: %s", e.Locale)
}
