package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/pkg/redis"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) *goredis.StatusCmd {
	return goredis.NewStatusResult("PONG", p.err)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	check := redis.Healthcheck(pinger{})
	require.NoError(t, check(context.Background()))

	down := errors.New("connection refused")
	err := redis.Healthcheck(pinger{err: down})(context.Background())
	require.ErrorIs(t, err, redis.ErrHealthcheckFailed)
	require.ErrorIs(t, err, down)
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	require.ErrorIs(t, err, redis.ErrEmptyURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost"})
	require.ErrorIs(t, err, redis.ErrInvalidURL)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})
	require.ErrorIs(t, err, redis.ErrNotReady)
}
