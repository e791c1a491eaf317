package forms

import "errors"

var (
	ErrBusy              = errors.New("forms.errors.busy")
	ErrUnknownCurrency   = errors.New("forms.errors.unknown_currency")
	ErrNoActiveCurrency  = errors.New("forms.errors.no_active_currency")
	ErrInvalidConfig     = errors.New("forms.errors.invalid_config")
	ErrInstanceClosed    = errors.New("forms.errors.instance_closed")
	ErrWrongInstanceKind = errors.New("forms.errors.wrong_instance_kind")
)
