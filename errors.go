package localekit

import "errors"

var (
	ErrInvalidConfig             = errors.New("invalid localekit configuration")
	ErrUnknownTimezone           = errors.New("unknown timezone")
	ErrUnknownDomain             = errors.New("unknown translation domain")
	ErrSelectorAlreadyRegistered = errors.New("selector already registered")
)
