package mailer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the subset of the SES client used by SES.
type SESAPI interface {
	SendTemplatedEmail(ctx context.Context, in *ses.SendTemplatedEmailInput, opts ...func(*ses.Options)) (*ses.SendTemplatedEmailOutput, error)
}

// SES sends Amazon SES templated email. The template id names the SES
// template and the service id the configuration set.
type SES struct {
	api       SESAPI
	from      string
	recipient string
}

func NewSES(api SESAPI, from, recipient string) (*SES, error) {
	if api == nil {
		return nil, fmt.Errorf("%w: SES client is required", ErrInvalidConfig)
	}
	if from == "" {
		return nil, fmt.Errorf("%w: sender address is required", ErrInvalidConfig)
	}
	return &SES{api: api, from: from, recipient: recipient}, nil
}

// NewSESFromRegion builds the SES client from the default AWS credential chain.
func NewSESFromRegion(ctx context.Context, region, from, recipient string) (*SES, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %v", ErrInvalidConfig, err)
	}
	return NewSES(ses.NewFromConfig(cfg), from, recipient)
}

func (s *SES) Send(ctx context.Context, serviceID, templateID string, params Params) error {
	if err := checkRequest(ProviderSES, serviceID, templateID); err != nil {
		return err
	}

	data, err := json.Marshal(params)
	if err != nil {
		return deliveryError(ProviderSES, serviceID, templateID, err)
	}

	_, err = s.api.SendTemplatedEmail(ctx, &ses.SendTemplatedEmailInput{
		Source:               aws.String(s.from),
		Destination:          &types.Destination{ToAddresses: []string{params.recipient(s.recipient)}},
		Template:             aws.String(templateID),
		TemplateData:         aws.String(string(data)),
		ConfigurationSetName: aws.String(serviceID),
	})
	if err != nil {
		return deliveryError(ProviderSES, serviceID, templateID, err)
	}
	return nil
}
