package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// New builds the Sender selected by cfg.Provider, wrapped with logging.
func New(ctx context.Context, cfg Config, log *slog.Logger) (Sender, error) {
	var (
		s   Sender
		err error
	)
	switch cfg.Provider {
	case ProviderEmailJS:
		s, err = NewEmailJS(cfg.EmailJSEndpoint, cfg.EmailJSPublicKey,
			WithAccessToken(cfg.EmailJSAccessToken),
			WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)
	case ProviderPostmark:
		s, err = NewPostmark(cfg.PostmarkServerToken, cfg.PostmarkAccountToken, cfg.From, cfg.Recipient)
	case ProviderSES:
		s, err = NewSESFromRegion(ctx, cfg.SESRegion, cfg.From, cfg.Recipient)
	case ProviderDev:
		s = NewDevSender(cfg.DevDir)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	if log == nil {
		return s, nil
	}
	return WithLogging(s, cfg.Provider, log), nil
}
