package mailer

import (
	"context"
	"fmt"

	"github.com/mrz1836/postmark"
)

// Postmark sends Postmark templated email. The template id is used as the
// template alias and the service id as the message tag.
type Postmark struct {
	client    *postmark.Client
	from      string
	recipient string
}

// PostmarkOption configures a Postmark sender.
type PostmarkOption func(*Postmark)

// WithPostmarkBaseURL points the client at another API host.
func WithPostmarkBaseURL(url string) PostmarkOption {
	return func(p *Postmark) { p.client.BaseURL = url }
}

func NewPostmark(serverToken, accountToken, from, recipient string, opts ...PostmarkOption) (*Postmark, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: Postmark server token is required", ErrInvalidConfig)
	}
	if from == "" {
		return nil, fmt.Errorf("%w: sender address is required", ErrInvalidConfig)
	}
	p := &Postmark{
		client:    postmark.NewClient(serverToken, accountToken),
		from:      from,
		recipient: recipient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Postmark) Send(ctx context.Context, serviceID, templateID string, params Params) error {
	if err := checkRequest(ProviderPostmark, serviceID, templateID); err != nil {
		return err
	}

	resp, err := p.client.SendTemplatedEmail(ctx, postmark.TemplatedEmail{
		TemplateAlias: templateID,
		TemplateModel: params.model(),
		From:          p.from,
		To:            params.recipient(p.recipient),
		Tag:           serviceID,
	})
	if err != nil {
		return deliveryError(ProviderPostmark, serviceID, templateID, err)
	}
	if resp.ErrorCode > 0 {
		return deliveryError(ProviderPostmark, serviceID, templateID,
			fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
