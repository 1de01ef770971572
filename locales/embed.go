// Package locales embeds the translation files.
package locales

import "embed"

// FS holds one YAML file per language, keyed by the language code.
//
//go:embed *.yaml
var FS embed.FS
