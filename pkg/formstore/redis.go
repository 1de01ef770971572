package formstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formlab/pkg/form"
)

// MaxUpdateRetries bounds how often Update retries a transaction that lost
// a race on its key.
const MaxUpdateRetries = 10

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisClient is the part of *redis.Client the store uses.
type RedisClient interface {
	getter
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error
}

// RedisStore keeps form states as JSON values with a TTL that is renewed
// on every save.
type RedisStore struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a store writing keys as prefix + "form:" + id.
func NewRedisStore(client RedisClient, prefix string, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, prefix: prefix + "form:", ttl: ttl}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Load(ctx context.Context, id string) (form.State, error) {
	if id == "" {
		return form.State{}, ErrEmptyID
	}
	return s.read(ctx, s.client, id)
}

func (s *RedisStore) read(ctx context.Context, c getter, id string) (form.State, error) {
	data, err := c.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return form.State{}, nil
	}
	if err != nil {
		return form.State{}, errors.Join(ErrLoadFailed, err)
	}

	var state form.State
	if err := json.Unmarshal(data, &state); err != nil {
		return form.State{}, errors.Join(ErrLoadFailed, fmt.Errorf("decode %s: %w", id, err))
	}
	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, state form.State) error {
	if id == "" {
		return ErrEmptyID
	}

	data, err := json.Marshal(state)
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

// Update reads and writes the key inside WATCH/MULTI. A transaction aborted
// by a concurrent write is retried with the new value, up to
// MaxUpdateRetries times.
func (s *RedisStore) Update(ctx context.Context, id string, fn UpdateFunc) (form.State, error) {
	if id == "" {
		return form.State{}, ErrEmptyID
	}
	key := s.key(id)

	var (
		next  form.State
		fnErr error
	)
	txf := func(tx *redis.Tx) error {
		current, err := s.read(ctx, tx, id)
		if err != nil {
			return err
		}
		next, fnErr = fn(current)
		if fnErr != nil {
			return nil
		}
		data, err := json.Marshal(next)
		if err != nil {
			return errors.Join(ErrSaveFailed, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		return err
	}

	for range MaxUpdateRetries {
		err := s.client.Watch(ctx, txf, key)
		switch {
		case errors.Is(err, redis.TxFailedErr):
			continue
		case errors.Is(err, ErrLoadFailed), errors.Is(err, ErrSaveFailed):
			return form.State{}, err
		case err != nil:
			return form.State{}, errors.Join(ErrSaveFailed, err)
		case fnErr != nil:
			return next, fnErr
		}
		return next, nil
	}
	return form.State{}, ErrUpdateConflict
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Join(ErrDeleteFailed, err)
	}
	return nil
}
