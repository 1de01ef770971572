package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/pkg/binder"
)

type fieldEvent struct {
	Demo  string `path:"demo" json:"-"`
	Field string `path:"field" json:"-"`
	Name  string `json:"name"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestWrap_BindsAndRenders(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, fieldEvent](func(_ handler.Context, ev fieldEvent) handler.Response {
		return handler.JSON(ev.Demo + "/" + ev.Field + "=" + ev.Name)
	})

	r := chi.NewRouter()
	r.Post("/{demo}/fields/{field}/change", handler.Wrap(h,
		handler.WithBinders[handler.Context, fieldEvent](binder.Path(chi.URLParam), binder.JSON()),
	))

	req := httptest.NewRequest(http.MethodPost, "/vanilla/fields/name/change", strings.NewReader(`{"name":"Al"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"vanilla/name=Al"}`, rec.Body.String())
}

func TestWrap_BinderErrorStopsHandler(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.HandlerFunc[handler.Context, fieldEvent](func(handler.Context, fieldEvent) handler.Response {
		called = true
		return handler.Empty()
	})

	var got error
	wrapped := handler.Wrap(h,
		handler.WithBinders[handler.Context, fieldEvent](binder.JSON()),
		handler.WithErrorHandler[handler.Context, fieldEvent](func(_ handler.Context, err error) {
			got = err
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	wrapped(httptest.NewRecorder(), req)

	assert.False(t, called)
	assert.ErrorIs(t, got, binder.ErrFailedToParseJSON)
}

func TestWrap_DefaultErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resp   handler.Response
		status int
	}{
		{"nil response", nil, http.StatusInternalServerError},
		{"http error", errorResponse{handler.ErrNotFound}, http.StatusNotFound},
		{"plain error", errorResponse{errors.New("boom")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
				return tt.resp
			})
			rec := httptest.NewRecorder()
			handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		order = append(order, "handler")
		return handler.Empty()
	})

	rec := httptest.NewRecorder()
	handler.Wrap(h, handler.WithDecorators(mark("outer"), mark("inner")))(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

type demoContext struct {
	handler.Context
	demo string
}

func TestWrap_ContextFactory(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[demoContext, struct{}](func(ctx demoContext, _ struct{}) handler.Response {
		return handler.Templ(text(ctx.demo))
	})
	wrapped := handler.Wrap(h, handler.WithContextFactory[demoContext, struct{}](
		func(w http.ResponseWriter, r *http.Request) demoContext {
			return demoContext{Context: handler.NewContext(w, r), demo: "strict"}
		},
	))

	rec := httptest.NewRecorder()
	wrapped(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "strict", rec.Body.String())
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("regular request has no SSE", func(t *testing.T) {
		t.Parallel()
		ctx := handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Nil(t, ctx.SSE())
	})

	t.Run("datastar request reuses one generator", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(handler.DataStarRequestHeader, "true")
		rec := httptest.NewRecorder()

		ctx := handler.NewContext(rec, req)
		first := ctx.SSE()
		require.NotNil(t, first)
		assert.Same(t, first, ctx.SSE())
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	})

	t.Run("delegates to request context", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		parent, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "v"))
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(parent)
		ctx := handler.NewContext(httptest.NewRecorder(), req)

		assert.Equal(t, "v", ctx.Value(key{}))
		cancel()
		<-ctx.Done()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		header map[string]string
		want   bool
	}{
		{"plain", "/", nil, false},
		{"request header", "/", map[string]string{"Datastar-Request": "true"}, true},
		{"accept header", "/", map[string]string{"Accept": "text/event-stream, text/html"}, true},
		{"query param", "/?datastar=%7B%7D", nil, true},
		{"html accept", "/", map[string]string{"Accept": "text/html"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(req))
		})
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrConflict)
	})
	handler.Wrap(h, handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) {
		got = err
	}))(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	assert.ErrorIs(t, got, handler.ErrConflict)
}
