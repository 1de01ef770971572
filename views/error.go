package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/pkg/i18n"
)

// ErrorPage returns the error page component for handler.NewErrorHandler.
// Texts are translated in the language stored in the render context.
func ErrorPage(tr *i18n.Translator) func(handler.ErrorPageParams) templ.Component {
	return func(p handler.ErrorPageParams) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			lang := i18n.GetLocale(ctx)
			t := func(key string, args ...string) string { return tr.T(lang, key, args...) }
			meta := Meta{
				Lang:      lang,
				Languages: tr.SupportedLanguages(),
				Title:     t("error.heading"),
				Path:      p.RetryURL,
				T:         t,
			}
			body := component(func(_ context.Context, m *markup) {
				m.rawf(`<h1>%d %s</h1>`, p.StatusCode, esc(t("error.heading")))
				m.rawf(`<p>%s</p>`, esc(tr.Td(lang, "error."+p.Key, p.Message)))
				if p.RequestID != "" {
					m.rawf(`<p><small>%s: <code>%s</code></small></p>`, esc(t("error.request_id")), esc(p.RequestID))
				}
				m.rawf(`<a href="%s">%s</a>`, esc(p.RetryURL), esc(t("error.retry")))
			})
			return Layout(meta, body).Render(ctx, w)
		})
	}
}

// ErrorToast returns the toast component for handler.NewErrorHandler.
func ErrorToast(tr *i18n.Translator) func(handler.ErrorToastParams) templ.Component {
	return func(p handler.ErrorToastParams) templ.Component {
		return component(func(ctx context.Context, m *markup) {
			lang := i18n.GetLocale(ctx)
			m.rawf(`<div class="toast toast-%s">%s</div>`, esc(p.Type), esc(tr.Td(lang, "error."+p.Key, p.Message)))
		})
	}
}
