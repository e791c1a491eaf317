package mailer

import (
	"errors"
	"fmt"
)

var (
	ErrDeliveryFailed     = errors.New("mailer.errors.delivery_failed")
	ErrInvalidConfig      = errors.New("mailer.errors.invalid_config")
	ErrMissingIdentifiers = errors.New("mailer.errors.missing_identifiers")
	ErrUnknownProvider    = errors.New("mailer.errors.unknown_provider")
)

// DeliveryError describes a failed Send.
type DeliveryError struct {
	Provider   string
	ServiceID  string
	TemplateID string
	Err        error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %s delivery of %s/%s: %v", ErrDeliveryFailed, e.Provider, e.ServiceID, e.TemplateID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDeliveryFailed) match any DeliveryError.
func (e *DeliveryError) Is(target error) bool { return target == ErrDeliveryFailed }

func deliveryError(provider, serviceID, templateID string, err error) error {
	return &DeliveryError{Provider: provider, ServiceID: serviceID, TemplateID: templateID, Err: err}
}
