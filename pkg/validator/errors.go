package validator

import "errors"

// Sentinels wrapped by the parsing helpers in numeric_rules.go.
var (
	ErrInvalidFormat = errors.New("validator: value is not a number")
	ErrOutOfRange    = errors.New("validator: value outside allowed range")
)
