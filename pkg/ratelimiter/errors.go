package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned by NewBucket for non-positive settings.
	ErrInvalidConfig = errors.New("ratelimiter: invalid bucket config")
	// ErrInvalidTokenCount is returned when a caller asks for zero or fewer tokens.
	ErrInvalidTokenCount = errors.New("ratelimiter: token count must be positive")
	// ErrContextCancelled wraps the context error of an aborted store call.
	ErrContextCancelled = errors.New("ratelimiter: request cancelled")
)
