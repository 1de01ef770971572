// Package redis connects to a redis server with github.com/redis/go-redis/v9.
//
// Connect retries the initial ping according to Config, which is loaded from
// REDIS_* environment variables. Healthcheck adapts a client to the
// readiness probe of the HTTP server.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package redis
