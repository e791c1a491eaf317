package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/almare/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newBucket(t *testing.T, clock *fakeClock, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clock.Now))
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store
}

func TestBucket(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute}

	t.Run("allows up to capacity then refills", func(t *testing.T) {
		t.Parallel()
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		b, _ := newBucket(t, clock, cfg)

		for want := 1; want >= 0; want-- {
			res, err := b.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, want, res.Remaining)
		}

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed())

		// Denied attempts do not drain further.
		res, err = b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 0, res.Remaining)

		clock.Advance(time.Minute)
		res, err = b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("keys are independent and resettable", func(t *testing.T) {
		t.Parallel()
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		b, store := newBucket(t, clock, cfg)

		_, err := b.AllowN(ctx, "a", 2)
		require.NoError(t, err)
		res, err := b.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 2, store.Len())

		require.NoError(t, b.Reset(ctx, "a"))
		res, err = b.Allow(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Remaining)
	})

	t.Run("sweep drops stale buckets", func(t *testing.T) {
		t.Parallel()
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		b, store := newBucket(t, clock, cfg)

		_, err := b.Allow(ctx, "a")
		require.NoError(t, err)
		clock.Advance(2 * time.Hour)
		store.Sweep()
		assert.Equal(t, 0, store.Len())
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()
		_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), ratelimiter.Config{})
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)

		clock := &fakeClock{now: time.Now()}
		b, _ := newBucket(t, clock, cfg)
		_, err = b.AllowN(ctx, "k", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = b.Allow(cancelled, "k")
		assert.ErrorIs(t, err, ratelimiter.ErrContextCancelled)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Now()}
	b, _ := newBucket(t, clock, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})

	limited := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	})
	h := ratelimiter.Middleware(b, ratelimiter.PathScoped(ratelimiter.ClientIP), limited)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }),
	)

	do := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "203.0.113.7:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := do("/contact")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := do("/contact")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "slow down", second.Body.String())
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, do("/donations").Code)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.1:1234"
	assert.Equal(t, "198.51.100.1", ratelimiter.ClientIP(req))

	req.RemoteAddr = "not-an-addr"
	assert.Equal(t, "not-an-addr", ratelimiter.ClientIP(req))
}
