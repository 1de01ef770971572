// Package i18n translates UI strings and validation messages.
//
// Translations are YAML trees keyed by language code, loaded through an
// Adapter (FSAdapter over an embed.FS in production, MapAdapter in tests).
// Keys are dotted paths such as "form.email.format"; values may contain
// %{name} placeholders filled from name, value argument pairs.
//
// Language negotiation uses golang.org/x/text/language, so "ko-KR" resolves
// to "ko" and unknown languages fall back to the default.
//
//	tr, err := i18n.New(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
//	    i18n.WithDefaultLanguage("en"))
//	r.Use(i18n.Middleware(tr, i18n.MiddlewareConfig{}))
//	msg := tr.Tc(ctx, "form.name.min_length", "min", "2")
package i18n
