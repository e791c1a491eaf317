package mailer

import "context"

// Params are the template placeholders of one delivery, name -> value.
type Params map[string]string

// Sender delivers one templated email. Send makes exactly one attempt; any
// failure is returned as a *DeliveryError matching ErrDeliveryFailed.
type Sender interface {
	Send(ctx context.Context, serviceID, templateID string, params Params) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, serviceID, templateID string, params Params) error

func (f SenderFunc) Send(ctx context.Context, serviceID, templateID string, params Params) error {
	return f(ctx, serviceID, templateID, params)
}

// RecipientParam is the placeholder holding the destination address.
const RecipientParam = "to_email"

// recipient returns params[to_email], falling back to def.
func (p Params) recipient(def string) string {
	if to := p[RecipientParam]; to != "" {
		return to
	}
	return def
}

// model converts params to the map[string]any shape template APIs expect.
func (p Params) model() map[string]any {
	m := make(map[string]any, len(p))
	for k, v := range p {
		m[k] = v
	}
	return m
}

func checkRequest(provider, serviceID, templateID string) error {
	if serviceID == "" || templateID == "" {
		return &DeliveryError{Provider: provider, ServiceID: serviceID, TemplateID: templateID, Err: ErrMissingIdentifiers}
	}
	return nil
}
