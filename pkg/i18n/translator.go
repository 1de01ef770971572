package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Translator resolves dotted keys against per-language trees.
// It is read-only after New and safe for concurrent use.
type Translator struct {
	translations map[string]map[string]any
	defaultLang  string
	langs        []string // supported languages, default first
	matcher      language.Matcher
	logMissing   bool
	log          *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when negotiation finds no match
// and as the second lookup when a key is missing.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger logs missing keys at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.log = l
			t.logMissing = true
		}
	}
}

// New loads the adapter and prepares language negotiation.
func New(ctx context.Context, adapter Adapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	loaded, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(loaded) == 0 {
		return nil, ErrNoTranslations
	}

	t.translations = make(map[string]map[string]any, len(loaded))
	for lang, tree := range loaded {
		t.translations[strings.ToLower(lang)] = tree
	}

	others := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		if lang != t.defaultLang {
			others = append(others, lang)
		}
	}
	sort.Strings(others)
	t.langs = append([]string{t.defaultLang}, others...)

	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguageTag, lang)
		}
		tags = append(tags, tag)
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// SupportedLanguages lists the languages with translations, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// IsSupported reports whether lang has translations.
func (t *Translator) IsSupported(lang string) bool {
	return slices.Contains(t.langs, strings.ToLower(lang))
}

// Match picks the best supported language for the given preferences. Each
// preference may be a single tag or a full Accept-Language header; earlier
// arguments come first. Unparseable input is skipped.
func (t *Translator) Match(prefs ...string) string {
	var desired []language.Tag
	for _, p := range prefs {
		if p == "" || len(p) > maxAcceptLanguageLength {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}
	if len(desired) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No || idx < 0 || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

// T translates key into lang, substituting %{name} placeholders from args
// given as name, value pairs. A key missing in lang is looked up in the
// default language; when that fails too the key itself is returned.
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Td(lang, key, key, args...)
}

// Td is T with an explicit fallback text.
func (t *Translator) Td(lang, key, fallback string, args ...string) string {
	lang = strings.ToLower(lang)
	if s, ok := t.lookup(lang, key); ok {
		return substitute(s, args)
	}
	if lang != t.defaultLang {
		if s, ok := t.lookup(t.defaultLang, key); ok {
			return substitute(s, args)
		}
	}
	if t.logMissing {
		t.log.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return substitute(fallback, args)
}

// Tc is T with the language taken from ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	node, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := node[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if node, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with the matching value. Unknown names are
// left as they are.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

// Args flattens a parameter map into sorted name, value pairs for T.
func Args(params map[string]any) []string {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, fmt.Sprint(params[k]))
	}
	return out
}
