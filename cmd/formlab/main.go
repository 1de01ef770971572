// Command formlab serves the form validation demos.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formlab/locales"
	"github.com/dmitrymomot/formlab/modules/vanilla"
	"github.com/dmitrymomot/formlab/pkg/config"
	"github.com/dmitrymomot/formlab/pkg/formstore"
	"github.com/dmitrymomot/formlab/pkg/httpserver"
	"github.com/dmitrymomot/formlab/pkg/i18n"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/ratelimiter"
	"github.com/dmitrymomot/formlab/pkg/redis"
	"github.com/dmitrymomot/formlab/pkg/requestid"
	"github.com/dmitrymomot/formlab/pkg/visitor"
)

const serviceName = "formlab"

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("formlab stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app, err := config.Load[appConfig]()
	if err != nil {
		return err
	}
	srvCfg, err := config.Load[httpserver.Config]()
	if err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(app.Env, serviceName),
		logger.WithContextExtractors(requestid.LogExtractor, visitor.LogExtractor),
	}
	if app.LogLevel != "" {
		level, err := logger.ParseLevel(app.LogLevel)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	tr, err := i18n.New(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(app.DefaultLang),
		i18n.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	store, checks, closeStore, err := openStore(ctx, app, log)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := vanilla.NewService(store, tr,
		vanilla.WithLogger(log),
		vanilla.WithSubmitDelay(app.SubmitDelay),
	)

	limiter, closeLimiter, err := newLimiter()
	if err != nil {
		return err
	}
	defer closeLimiter()

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.RealIP,
		middleware.Recoverer,
	)
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, checks...))

	r.Group(func(r chi.Router) {
		r.Use(
			visitor.Middleware(
				visitor.WithMaxAge(app.FormStateTTL),
				visitor.WithSecure(app.SecureCookies),
			),
			i18n.Middleware(tr, i18n.MiddlewareConfig{}),
			ratelimiter.Middleware(limiter,
				ratelimiter.RemoteIP,
				ratelimiter.WithMethods(http.MethodPost),
			),
		)
		r.Mount("/", vanilla.Router(vanilla.RouterOptions{
			Demos: svc,
			API:   vanilla.NewAPI(tr, log),
		}))
	})

	return httpserver.New(srvCfg, httpserver.WithLogger(log)).Run(ctx, r)
}

// newLimiter builds the per-client limit on form events. Visitor ids are
// minted for cookie-less requests, so the client address is the key.
func newLimiter() (*ratelimiter.Bucket, func(), error) {
	cfg, err := config.Load[ratelimiter.Config]()
	if err != nil {
		return nil, nil, err
	}
	store := ratelimiter.NewMemoryStore()
	limiter, err := ratelimiter.NewBucket(store, cfg)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return limiter, store.Close, nil
}

// openStore builds the configured form store with its readiness checks.
func openStore(ctx context.Context, app appConfig, log *slog.Logger) (formstore.Store, []httpserver.Check, func(), error) {
	switch app.FormStore {
	case formstore.BackendMemory:
		store := formstore.NewMemoryStore(app.FormStateTTL, app.CleanupPeriod)
		log.InfoContext(ctx, "using memory form store", logger.Component("formstore"))
		return store, nil, func() { _ = store.Close() }, nil

	case formstore.BackendRedis:
		cfg, err := config.Load[redis.Config]()
		if err != nil {
			return nil, nil, nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		log.InfoContext(ctx, "using redis form store", logger.Component("formstore"))
		store := formstore.NewRedisStore(client, cfg.KeyPrefix, app.FormStateTTL)
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", logger.Error(err))
			}
		}
		return store, []httpserver.Check{redis.Healthcheck(client)}, closeFn, nil
	}
	return nil, nil, nil, errors.Join(formstore.ErrUnknownBackend, fmt.Errorf("%q", app.FormStore))
}
