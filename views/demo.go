package views

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formlab/pkg/form"
)

// Element ids patched over SSE.
const (
	FormID         = "demo-form"
	SubmitButtonID = "submit-button"
	ResultID       = "result"
	StatusID       = "status"
)

// ErrorID returns the id of the error slot under f.
func ErrorID(f form.Field) string {
	return "error-" + f.String()
}

// Demo is everything the demo page shows.
type Demo struct {
	Slug       string
	T          Translate
	Values     form.Record
	Errors     map[form.Field]string // translated, touched fields only
	Dirty      bool
	Valid      bool
	Submitting bool
	Submitted  *form.Record
}

func (d Demo) path(suffix string) string {
	return "/" + d.Slug + suffix
}

// DemoPage renders the full page of one demo.
func DemoPage(meta Meta, d Demo) templ.Component {
	return Layout(meta, component(func(ctx context.Context, m *markup) {
		t := d.T
		m.rawf(`<a href="/">%s</a>`, esc(t("app.back")))
		m.rawf(`<h1>%s</h1><p>%s</p>`, esc(t("demo."+d.Slug+".title")), esc(t("demo."+d.Slug+".description")))

		m.rawf(`<section><h2>%s</h2><ul>`, esc(t("demo.how.heading")))
		for _, key := range []string{"demo.how.values", "demo.how.touched", "demo.how.errors", "demo.how.submit"} {
			m.rawf(`<li>%s</li>`, esc(t(key)))
		}
		m.raw(`</ul></section>`)

		m.component(ctx, Form(d))
		m.component(ctx, Result(t, d.Submitted))
		m.component(ctx, Status(t, d.Dirty, d.Valid, d.Submitting))
	}))
}

type input struct {
	field     form.Field
	kind      string
	inputMode string
	bind      string
}

var inputs = []input{
	{field: form.Name, kind: "text", bind: "name"},
	{field: form.Email, kind: "email", bind: "email"},
	{field: form.Age, kind: "text", inputMode: "numeric", bind: "age"},
	{field: form.Password, kind: "password", bind: "password"},
	{field: form.ConfirmPassword, kind: "password", bind: "confirm-password"},
}

// Signals returns the client signal store for the given values.
func Signals(values form.Record, submitting bool) map[string]any {
	return map[string]any{
		form.Name.String():            values.Name,
		form.Email.String():           values.Email,
		form.Age.String():             values.Age,
		form.Password.String():        values.Password,
		form.ConfirmPassword.String(): values.ConfirmPassword,
		"submitting":                  submitting,
	}
}

// Form renders the inputs, their error slots and the buttons. Without
// JavaScript it still works as a regular form post.
func Form(d Demo) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		t := d.T
		signals, err := json.Marshal(Signals(d.Values, d.Submitting))
		if err != nil {
			m.err = fmt.Errorf("marshal signals: %w", err)
			return
		}

		m.rawf(`<form id="%s" method="post" action="%s" novalidate data-signals="%s" data-on:submit__prevent="@post('%s')">`,
			FormID, esc(d.path("/submit")), esc(string(signals)), esc(d.path("/submit")))

		for _, in := range inputs {
			f := in.field
			placeholder := "field." + f.String() + ".placeholder"
			if f == form.Password && d.Slug == form.Strict.Name() {
				placeholder += "_strict"
			}

			m.rawf(`<div class="field"><label for="field-%s">%s</label>`, f, esc(t("field."+f.String()+".label")))
			m.rawf(`<input id="field-%s" name="%s" type="%s" value="%s" placeholder="%s" data-bind:%s`,
				f, f, in.kind, esc(d.Values.Get(f)), esc(t(placeholder)), in.bind)
			if in.inputMode != "" {
				m.rawf(` inputmode="%s"`, in.inputMode)
			}
			m.rawf(` data-on:input__debounce.150ms="@post('%s')"`, esc(d.path("/fields/"+f.String()+"/change")))
			m.rawf(` data-on:blur="@post('%s')">`, esc(d.path("/fields/"+f.String()+"/blur")))
			m.component(ctx, FieldError(f, d.Errors[f]))
			m.raw(`</div>`)
		}

		m.raw(`<div class="actions">`)
		m.component(ctx, SubmitButton(t, d.Submitting))
		m.rawf(` <button id="reset-button" type="submit" formaction="%s" formnovalidate data-on:click__prevent="@post('%s')">%s</button>`,
			esc(d.path("/reset")), esc(d.path("/reset")), esc(t("button.reset")))
		m.raw(`</div></form>`)
	})
}

// FieldError renders the error slot of f. An empty message renders an
// empty slot so later patches find it.
func FieldError(f form.Field, message string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.rawf(`<p id="%s" class="field-error" role="alert">%s</p>`, ErrorID(f), esc(message))
	})
}

// SubmitButton renders the submit button, disabled while submitting.
func SubmitButton(t Translate, submitting bool) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if submitting {
			m.rawf(`<button id="%s" type="submit" disabled>%s</button>`, SubmitButtonID, esc(t("button.submitting")))
			return
		}
		m.rawf(`<button id="%s" type="submit">%s</button>`, SubmitButtonID, esc(t("button.submit")))
	})
}

// Result renders the last submitted record as indented JSON.
func Result(t Translate, submitted *form.Record) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if submitted == nil {
			m.rawf(`<section id="%s"></section>`, ResultID)
			return
		}
		data, err := json.MarshalIndent(submitted, "", "  ")
		if err != nil {
			m.err = fmt.Errorf("marshal result: %w", err)
			return
		}
		m.rawf(`<section id="%s"><h3>%s</h3><pre>%s</pre></section>`, ResultID, esc(t("result.heading")), esc(string(data)))
	})
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

// Status renders the live form state panel.
func Status(t Translate, dirty, valid, submitting bool) templ.Component {
	return component(func(_ context.Context, m *markup) {
		validText := t("status.valid_no")
		if valid {
			validText = t("status.valid_yes")
		}
		busy := "✓"
		if submitting {
			busy = "⏳"
		}

		m.rawf(`<section id="%s"><h3>%s</h3><ul>`, StatusID, esc(t("status.heading")))
		m.rawf(`<li><strong>%s:</strong> %s</li>`, esc(t("status.dirty")), mark(dirty))
		m.rawf(`<li><strong>%s:</strong> %s</li>`, esc(t("status.valid")), esc(validText))
		m.rawf(`<li><strong>%s:</strong> %s</li>`, esc(t("status.submitting")), busy)
		m.raw(`</ul></section>`)
	})
}
