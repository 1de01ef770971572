package views

import (
	"context"

	"github.com/a-h/templ"
)

// DemoLink is one entry of the index page.
type DemoLink struct {
	Href        string
	Title       string
	Description string
}

// Index lists the demos.
func Index(meta Meta, demos []DemoLink) templ.Component {
	return Layout(meta, component(func(_ context.Context, m *markup) {
		t := meta.T
		m.rawf(`<h1>%s</h1><p>%s</p>`, esc(t("index.heading")), esc(t("index.lead")))

		m.raw(`<ul class="demos">`)
		for _, d := range demos {
			m.rawf(`<li><a href="%s"><h2>%s</h2><p>%s</p><span>%s</span></a></li>`,
				esc(d.Href), esc(d.Title), esc(d.Description), esc(t("index.more")))
		}
		m.raw(`</ul>`)

		m.rawf(`<section><h2>%s</h2><ul>`, esc(t("index.features.heading")))
		for _, key := range []string{"index.features.how", "index.features.rules", "index.features.demo"} {
			m.rawf(`<li>✓ %s</li>`, esc(t(key)))
		}
		m.raw(`</ul></section>`)
	}))
}
