package views

import (
	"context"

	"github.com/a-h/templ"
)

// DataStarScript is the client bundle matching datastar-go v1.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// ToastTarget is the element error toasts are patched into.
const ToastTarget = "#toast-container"

// Meta describes the page around the content.
type Meta struct {
	Lang      string
	Languages []string
	Title     string
	Path      string
	T         Translate
}

// Layout renders a complete HTML document around body.
func Layout(meta Meta, body templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.rawf(`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8">`, esc(meta.Lang))
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<title>`)
		m.text(meta.Title)
		m.rawf(`</title><script type="module" src="%s"></script></head><body>`, DataStarScript)

		m.raw(`<header><nav>`)
		m.rawf(`<a href="/">%s</a>`, esc(meta.T("app.title")))
		m.rawf(` <span>%s:</span>`, esc(meta.T("app.language")))
		for _, lang := range meta.Languages {
			if lang == meta.Lang {
				m.rawf(` <strong>%s</strong>`, esc(lang))
				continue
			}
			m.rawf(` <a href="%s?lang=%s">%s</a>`, esc(meta.Path), esc(lang), esc(lang))
		}
		m.raw(`</nav></header>`)

		m.raw(`<div id="toast-container" role="status"></div><main>`)
		m.component(ctx, body)
		m.raw(`</main></body></html>`)
	})
}
