package ratelimiter

import (
	"context"
	"time"
)

// Store keeps one bucket per key.
type Store interface {
	// ConsumeTokens refills the bucket of key and takes tokens from it.
	// A negative remaining count means the request must be denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
