package visitor

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formlab/pkg/logger"
)

// CookieName is the default name of the visitor cookie.
const CookieName = "formlab_vid"

type contextKey struct{}

// WithContext stores a visitor id in ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the visitor id, or "" when the middleware did not run.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LogExtractor adds visitor_id to log records.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	id := FromContext(ctx)
	return logger.VisitorID(id), id != ""
}

// Option configures the middleware.
type Option func(*options)

type options struct {
	name   string
	maxAge time.Duration
	secure bool
}

func WithCookieName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithMaxAge sets the cookie lifetime. It should match the form state TTL.
func WithMaxAge(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.maxAge = d
		}
	}
}

func WithSecure(secure bool) Option {
	return func(o *options) { o.secure = secure }
}

// Middleware identifies the browser by a uuid cookie, issuing one when the
// request has none or carries a malformed value. The cookie is refreshed on
// every request so its lifetime slides with activity.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := options{name: CookieName, maxAge: 30 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(o.name); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     o.name,
				Value:    id,
				Path:     "/",
				MaxAge:   int(o.maxAge.Seconds()),
				HttpOnly: true,
				Secure:   o.secure,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}
