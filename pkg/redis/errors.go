package redis

import "errors"

var (
	ErrEmptyURL          = errors.New("redis: REDIS_URL is empty")
	ErrInvalidURL        = errors.New("redis: invalid REDIS_URL")
	ErrNotReady          = errors.New("redis: form state backend did not answer before the connect timeout")
	ErrHealthcheckFailed = errors.New("redis: form state backend is unreachable")
)
