package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/pkg/i18n"
)

const enYAML = `
en:
  greeting: "Hello, %{name}!"
  form:
    name:
      min_length: "Name must be at least %{min} characters"
    only_en: "English only"
`

const koYAML = `
ko:
  greeting: "안녕하세요, %{name}님!"
  form:
    name:
      min_length: "이름은 최소 %{min}자 이상이어야 합니다"
`

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	fsys := fstest.MapFS{
		"locales/en.yaml":   {Data: []byte(enYAML)},
		"locales/ko.yml":    {Data: []byte(koYAML)},
		"locales/notes.txt": {Data: []byte("ignored")},
	}
	tr, err := i18n.New(context.Background(),
		i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales"),
		i18n.WithDefaultLanguage("en"),
	)
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, "Hello, Jin!", tr.T("en", "greeting", "name", "Jin"))
	assert.Equal(t, "안녕하세요, 진님!", tr.T("ko", "greeting", "name", "진"))
	assert.Equal(t, "이름은 최소 2자 이상이어야 합니다", tr.T("KO", "form.name.min_length", "min", "2"))

	// missing in ko, found in the default language
	assert.Equal(t, "English only", tr.T("ko", "form.only_en"))
	// missing everywhere
	assert.Equal(t, "form.nope", tr.T("ko", "form.nope"))
	assert.Equal(t, "fallback 3", tr.Td("ko", "form.nope", "fallback %{n}", "n", "3"))
	// a subtree is not a message
	assert.Equal(t, "form.name", tr.T("en", "form.name"))
	// unknown placeholders stay
	assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting"))
}

func TestTranslator_Tc(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	ctx := i18n.SetLocale(context.Background(), "ko")
	assert.Equal(t, "안녕하세요, A님!", tr.Tc(ctx, "greeting", "name", "A"))
	assert.Equal(t, "en", i18n.GetLocale(context.Background()))
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, []string{"en", "ko"}, tr.SupportedLanguages())
	assert.Equal(t, "ko", tr.Match("ko-KR,ko;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", tr.Match("en-GB"))
	assert.Equal(t, "en", tr.Match("fr-FR"))
	assert.Equal(t, "en", tr.Match(""))
	assert.Equal(t, "ko", tr.Match("", "ko"))
	assert.True(t, tr.IsSupported("KO"))
	assert.False(t, tr.IsSupported("ja"))
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.New(context.Background(), nil)
	require.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.New(context.Background(), i18n.MapAdapter{})
	require.ErrorIs(t, err, i18n.ErrNoTranslations)

	_, err = i18n.New(context.Background(), i18n.MapAdapter{"not a tag!": {}})
	require.ErrorIs(t, err, i18n.ErrInvalidLanguageTag)

	bad := fstest.MapFS{"l/en.yaml": {Data: []byte("en: [1, 2]")}}
	_, err = i18n.New(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), bad, "l"))
	require.ErrorIs(t, err, i18n.ErrInvalidStructure)

	_, err = i18n.New(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "missing"))
	require.ErrorIs(t, err, i18n.ErrFailedToReadDir)
}

func TestArgs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, i18n.Args(nil))
	assert.Equal(t, []string{"field", "age", "min", "18"}, i18n.Args(map[string]any{"min": float64(18), "field": "age"}))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	var got string
	h := i18n.Middleware(tr, i18n.MiddlewareConfig{})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	t.Run("accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "ko", got)
	})

	t.Run("cookie beats header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "ko")
		req.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "en", got)
	})

	t.Run("query beats cookie and is remembered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=ko", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "ko", got)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "ko", cookies[0].Value)
	})

	t.Run("unsupported query is ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "en", got)
		assert.Empty(t, rec.Result().Cookies())
	})
}
