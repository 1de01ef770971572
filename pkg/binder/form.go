package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory bounds the in-memory part of multipart forms.
const DefaultMaxMemory = 1 << 20

// Form binds url-encoded or multipart form values to fields tagged `form:"name"`.
// Uploaded files are not bound.
func Form() Func {
	return func(r *http.Request, v any) error {
		mt, err := mediaType(r)
		if err != nil {
			return err
		}

		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		default:
			return fmt.Errorf("%w: got %s, expected a form", ErrUnsupportedMediaType, mt)
		}

		return bindValues(v, "form", func(name string) ([]string, bool) {
			vals, ok := r.PostForm[name]
			return vals, ok
		}, ErrInvalidForm)
	}
}
