package ratelimiter

import "time"

// Result is the outcome of one Allow call.
type Result struct {
	Limit     int
	Remaining int // negative when the request was denied
	ResetAt   time.Time
}

// Allowed reports whether the request may proceed.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long a denied caller should wait, or 0.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}

// Config describes a token bucket. The defaults allow a burst of typing
// with debounced field events while stopping scripted floods.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"60"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"10"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return errInvalidConfig("capacity", c.Capacity)
	case c.RefillRate <= 0:
		return errInvalidConfig("refill rate", c.RefillRate)
	case c.RefillInterval <= 0:
		return errInvalidConfig("refill interval", c.RefillInterval)
	}
	return nil
}
