package i18n

import (
	"net/http"
	"time"
)

// maxAcceptLanguageLength bounds the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// MiddlewareConfig names the request inputs the middleware reads.
type MiddlewareConfig struct {
	QueryParam string
	CookieName string
	CookieAge  time.Duration
}

// Middleware picks the request language and stores it with SetLocale.
// Precedence: the query parameter, then the cookie, then Accept-Language.
// A supported language given in the query is remembered in the cookie.
func Middleware(t *Translator, cfg MiddlewareConfig) func(http.Handler) http.Handler {
	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "lang"
	}
	if cfg.CookieAge == 0 {
		cfg.CookieAge = 365 * 24 * time.Hour
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var lang string

			if q := r.URL.Query().Get(cfg.QueryParam); q != "" && t.IsSupported(q) {
				lang = t.Match(q)
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    lang,
					Path:     "/",
					MaxAge:   int(cfg.CookieAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			} else if c, err := r.Cookie(cfg.CookieName); err == nil && t.IsSupported(c.Value) {
				lang = t.Match(c.Value)
			} else {
				lang = t.Match(r.Header.Get("Accept-Language"))
			}

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
