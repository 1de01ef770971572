// Package formstore keeps each visitor's form.State between requests.
//
// MemoryStore suits a single instance. RedisStore shares state across
// instances through go-redis:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := formstore.NewRedisStore(client, cfg.KeyPrefix, 30*time.Minute)
//
// Both return the zero State for ids they do not know, so a new visitor
// starts with an empty form.
//
// Read-modify-write sequences go through Update, which concurrent requests
// of the same visitor cannot interleave:
//
//	state, err := store.Update(ctx, id, func(s form.State) (form.State, error) {
//		return s.Blur(form.Email), nil
//	})
package formstore
