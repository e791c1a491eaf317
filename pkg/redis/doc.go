// Package redis connects to Redis with retries and exposes a readiness check.
// The site uses Redis, when REDIS_URL is set, as the analytics event stream.
package redis
