package ratelimiter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig     = errors.New("ratelimiter: invalid configuration")
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")
	ErrEmptyKey          = errors.New("ratelimiter: empty key")
)

func errInvalidConfig(name string, got any) error {
	return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, got)
}
