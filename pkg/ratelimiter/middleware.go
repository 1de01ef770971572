package ratelimiter

import (
	"hash/fnv"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxKeyLength bounds stored keys; longer composite keys are hashed.
const maxKeyLength = 64

// KeyFunc names the bucket a request draws from. An empty key skips
// limiting for that request.
type KeyFunc func(r *http.Request) string

// RemoteIP keys requests by the host part of RemoteAddr. Put a real-ip
// middleware in front when running behind a proxy.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Composite joins the non-empty keys of every func with ":".
func Composite(funcs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(funcs))
		for _, fn := range funcs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		key := strings.Join(parts, ":")
		if len(key) <= maxKeyLength {
			return key
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(key))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// FirstOf uses the first func that returns a key.
func FirstOf(funcs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		for _, fn := range funcs {
			if key := fn(r); key != "" {
				return key
			}
		}
		return ""
	}
}

type middlewareConfig struct {
	denied  http.Handler
	failed  func(w http.ResponseWriter, r *http.Request, err error)
	methods map[string]bool
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithDeniedHandler replaces the plain 429 response.
func WithDeniedHandler(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.denied = h
		}
	}
}

// WithErrorHandler handles store failures. The default answers 500.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.failed = fn
		}
	}
}

// WithMethods limits only the given methods; others pass untouched.
func WithMethods(methods ...string) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.methods = make(map[string]bool, len(methods))
		for _, m := range methods {
			c.methods[strings.ToUpper(m)] = true
		}
	}
}

// Middleware takes one token per request and answers 429 once the bucket
// is empty. Rate limit headers are set on every limited request.
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		denied: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		failed: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.methods != nil && !cfg.methods[r.Method] {
				next.ServeHTTP(w, r)
				return
			}
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), k)
			if err != nil {
				cfg.failed(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				retry := res.RetryAfter(time.Now())
				h.Set("Retry-After", strconv.Itoa(max(1, int((retry+time.Second-1)/time.Second))))
				cfg.denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
