package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Translate resolves a translation key in the request language.
type Translate func(key string, args ...string) string

// markup writes HTML and keeps the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err == nil {
		_, m.err = io.WriteString(m.w, s)
	}
}

// text writes s HTML-escaped.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// rawf formats into the output. Arguments are written as given, so escape
// user input with esc first.
func (m *markup) rawf(format string, args ...any) {
	if m.err == nil {
		_, m.err = fmt.Fprintf(m.w, format, args...)
	}
}

func (m *markup) component(ctx context.Context, c templ.Component) {
	if m.err == nil && c != nil {
		m.err = c.Render(ctx, m.w)
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func component(fn func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		fn(ctx, m)
		return m.err
	})
}
