// Package ratelimiter implements a token bucket limiter with an in-memory
// store and HTTP middleware. The site uses it to throttle form submissions
// per client.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.PathScoped(ratelimiter.ClientIP), nil)).
//	    Post("/contact", submit)
package ratelimiter
