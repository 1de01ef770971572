// Package ratelimiter limits request rates with token buckets.
//
// A Bucket holds Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds the
// bucket empty is denied without consuming anything.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.Use(ratelimiter.Middleware(limiter,
//		ratelimiter.FirstOf(visitorKey, ratelimiter.RemoteIP),
//		ratelimiter.WithMethods(http.MethodPost),
//	))
//
// Config carries env tags so it can be loaded with pkg/config.
package ratelimiter
