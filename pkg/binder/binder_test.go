package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/pkg/binder"
)

type record struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Age   string `json:"age" form:"age"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Al","age":"25"}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		var r record
		require.NoError(t, bind(req, &r))
		assert.Equal(t, record{Name: "Al", Age: "25"}, r)
	})

	t.Run("keeps long values intact", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("가", 2000) + "끝"
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+long+`"}`))
		req.Header.Set("Content-Type", "application/json")
		var r record
		require.NoError(t, bind(req, &r))
		assert.Equal(t, long, r.Name)
	})

	t.Run("body over the size cap", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", binder.DefaultMaxJSONSize)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+long+`"}`))
		req.Header.Set("Content-Type", "application/json")
		var r record
		require.ErrorIs(t, bind(req, &r), binder.ErrFailedToParseJSON)
	})

	tests := []struct {
		name        string
		contentType string
		body        string
		err         error
	}{
		{"missing content type", "", `{}`, binder.ErrMissingContentType},
		{"wrong content type", "text/plain", `{}`, binder.ErrUnsupportedMediaType},
		{"empty body", "application/json", ``, binder.ErrFailedToParseJSON},
		{"unknown field", "application/json", `{"nickname":"x"}`, binder.ErrFailedToParseJSON},
		{"wrong type", "application/json", `{"age":25}`, binder.ErrFailedToParseJSON},
		{"trailing data", "application/json", `{} {}`, binder.ErrFailedToParseJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			var r record
			require.ErrorIs(t, bind(req, &r), tt.err)
		})
	}

	t.Run("non-struct target", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		var m map[string]string
		require.ErrorIs(t, bind(req, &m), binder.ErrFailedToParseJSON)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	form := url.Values{"name": {"Al"}, "email": {"a@b.co"}, "ignored": {"x"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var r record
	require.NoError(t, binder.Form()(req, &r))
	assert.Equal(t, record{Name: "Al", Email: "a@b.co"}, r)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	require.ErrorIs(t, binder.Form()(req, &r), binder.ErrUnsupportedMediaType)
}

func TestForm_EmbeddedStruct(t *testing.T) {
	t.Parallel()

	type Person struct {
		Name string `form:"name"`
		Age  string `form:"age"`
	}
	var got struct {
		Demo string `path:"demo"`
		Person
	}
	values := url.Values{"name": {"Al"}, "age": {"25"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	require.NoError(t, binder.Form()(req, &got))
	assert.Equal(t, "Al", got.Name)
	assert.Equal(t, "25", got.Age)
	assert.Empty(t, got.Demo)
}

func TestQueryAndPath(t *testing.T) {
	t.Parallel()

	type request struct {
		Demo    string `path:"demo"`
		Field   string `path:"field"`
		Schema  string `query:"schema"`
		Verbose bool   `query:"verbose"`
		Limit   *int   `query:"limit"`
	}

	var got request
	r := chi.NewRouter()
	r.Post("/{demo}/fields/{field}", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, binder.Path(chi.URLParam)(req, &got))
		require.NoError(t, binder.Query()(req, &got))
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/strict/fields/email?schema=strict&verbose=on&limit=3", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, "strict", got.Demo)
	assert.Equal(t, "email", got.Field)
	assert.Equal(t, "strict", got.Schema)
	assert.True(t, got.Verbose)
	require.NotNil(t, got.Limit)
	assert.Equal(t, 3, *got.Limit)
}

func TestQuery_InvalidValue(t *testing.T) {
	t.Parallel()

	var v struct {
		Limit int `query:"limit"`
	}
	req := httptest.NewRequest(http.MethodGet, "/?limit=many", nil)
	require.ErrorIs(t, binder.Query()(req, &v), binder.ErrInvalidQuery)
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/vanilla/fields/name/change",
			strings.NewReader(`{"name":"Al","email":"a@b.co","unrelated":true}`))
		req.Header.Set("Content-Type", "application/json")

		var got record
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, record{Name: "Al", Email: "a@b.co"}, got)
	})

	t.Run("query on GET", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"age":"25"}`}}
		req := httptest.NewRequest(http.MethodGet, "/vanilla?"+q.Encode(), nil)

		var got record
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "25", got.Age)
	})

	t.Run("keeps long values intact", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x", 2000) + "y"
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+long+`"}`))

		var got record
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, long, got.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		var got record
		require.ErrorIs(t, binder.Signals()(req, &got), binder.ErrInvalidSignals)
	})

	t.Run("non-struct target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

		var got map[string]any
		require.ErrorIs(t, binder.Signals()(req, &got), binder.ErrInvalidSignals)
	})
}
