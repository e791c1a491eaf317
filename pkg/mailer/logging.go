package mailer

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/almare/pkg/logger"
)

// WithLogging logs every delivery attempt with its outcome and duration.
// Param values are not logged.
func WithLogging(next Sender, provider string, log *slog.Logger) Sender {
	return SenderFunc(func(ctx context.Context, serviceID, templateID string, params Params) error {
		start := time.Now()
		err := next.Send(ctx, serviceID, templateID, params)
		attrs := []any{
			logger.Provider(provider),
			slog.String("service_id", serviceID),
			slog.String("template_id", templateID),
			logger.Duration(time.Since(start)),
		}
		if err != nil {
			log.ErrorContext(ctx, "email delivery failed", append(attrs, logger.Error(err))...)
			return err
		}
		log.InfoContext(ctx, "email delivered", attrs...)
		return nil
	})
}
