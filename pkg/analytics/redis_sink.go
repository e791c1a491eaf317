package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/almare/pkg/logger"
)

const (
	DefaultStream       = "almare:analytics"
	DefaultStreamMaxLen = 10000
	redisWriteTimeout   = 2 * time.Second
)

// RedisStreamSink appends events to a capped Redis stream.
type RedisStreamSink struct {
	client redis.Cmdable
	stream string
	maxLen int64
	log    *slog.Logger
}

func NewRedisStreamSink(client redis.Cmdable, stream string, maxLen int64, log *slog.Logger) *RedisStreamSink {
	if stream == "" {
		stream = DefaultStream
	}
	if maxLen <= 0 {
		maxLen = DefaultStreamMaxLen
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &RedisStreamSink{client: client, stream: stream, maxLen: maxLen, log: log}
}

// Track writes the event detached from the request's cancellation, bounded
// by a short timeout.
func (s *RedisStreamSink) Track(ctx context.Context, e Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), redisWriteTimeout)
	defer cancel()

	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]any{
			"action":    e.Action,
			"category":  e.Category,
			"label":     e.Label,
			"title":     e.Title,
			"timestamp": e.Timestamp.UTC().Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		s.log.WarnContext(ctx, "analytics event not stored",
			logger.Component("analytics"), logger.Event(e.Action), logger.Error(err))
	}
}
