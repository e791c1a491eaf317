package analytics

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/almare/pkg/logger"
)

// LogSink writes events to a structured logger at info level.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With(logger.Component("analytics"))}
}

func (s *LogSink) Track(ctx context.Context, e Event) {
	attrs := []any{
		logger.Event(e.Action),
		slog.String("category", e.Category),
		slog.String("label", e.Label),
		slog.Time("timestamp", e.Timestamp),
	}
	if e.Title != "" {
		attrs = append(attrs, slog.String("title", e.Title))
	}
	s.log.InfoContext(ctx, "analytics event", attrs...)
}
