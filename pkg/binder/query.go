package binder

import "net/http"

// Query binds URL query parameters to fields tagged `query:"name"`.
func Query() Func {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindValues(v, "query", func(name string) ([]string, bool) {
			vals, ok := q[name]
			return vals, ok
		}, ErrInvalidQuery)
	}
}

// Path binds route parameters to fields tagged `path:"name"` using the
// router's lookup, such as chi.URLParam.
func Path(param func(r *http.Request, name string) string) Func {
	return func(r *http.Request, v any) error {
		return bindValues(v, "path", func(name string) ([]string, bool) {
			if s := param(r, name); s != "" {
				return []string{s}, true
			}
			return nil, false
		}, ErrInvalidPath)
	}
}
