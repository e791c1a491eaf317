package redis

import "errors"

var (
	ErrEmptyURL   = errors.New("redis: connection URL is empty")
	ErrInvalidURL = errors.New("redis: cannot parse connection URL")
	ErrNotReady   = errors.New("redis: server not reachable before deadline")
	ErrUnhealthy  = errors.New("redis: ping failed")
)
