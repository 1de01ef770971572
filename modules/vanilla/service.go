package vanilla

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/pkg/binder"
	"github.com/dmitrymomot/formlab/pkg/form"
	"github.com/dmitrymomot/formlab/pkg/formstore"
	"github.com/dmitrymomot/formlab/pkg/i18n"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/visitor"
	"github.com/dmitrymomot/formlab/views"
)

// DefaultSubmitDelay is the simulated submission round trip.
const DefaultSubmitDelay = time.Second

// Service serves the demo pages and validates them live over datastar.
// Each visitor has one form.State per demo in the store.
type Service struct {
	store        formstore.Store
	tr           *i18n.Translator
	log          *slog.Logger
	delay        time.Duration
	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. slog.Default is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSubmitDelay sets how long a submission takes. Zero completes
// submissions right away.
func WithSubmitDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithErrorHandler replaces the default error page and toast handler.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func NewService(store formstore.Store, tr *i18n.Translator, opts ...Option) *Service {
	s := &Service{
		store: store,
		tr:    tr,
		log:   slog.Default(),
		delay: DefaultSubmitDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:   views.ErrorPage(tr),
			ErrorToast:  views.ErrorToast(tr),
			ToastTarget: views.ToastTarget,
		})
	}
	s.log = s.log.With(logger.Component("vanilla"))
	return s
}

// demoRequest addresses one demo.
type demoRequest struct {
	Demo string `path:"demo" json:"-"`
}

// fieldRequest is a field event carrying the client's current values.
type fieldRequest struct {
	Demo  string `path:"demo" json:"-"`
	Field string `path:"field" json:"-"`
	form.Record
}

// submitRequest carries the values as datastar signals or, without
// JavaScript, as a regular form post.
type submitRequest struct {
	Demo string `path:"demo" json:"-"`
	form.Record
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	path := binder.Path(chi.URLParam)

	r.Get("/", handler.Wrap(s.index,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/{demo}", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, demoRequest](path),
		handler.WithErrorHandler[handler.Context, demoRequest](s.errorHandler),
	))
	r.Post("/{demo}/fields/{field}/change", handler.Wrap(s.fieldEvent(form.State.Change),
		handler.WithBinders[handler.Context, fieldRequest](path, binder.Signals()),
		handler.WithErrorHandler[handler.Context, fieldRequest](s.errorHandler),
	))
	r.Post("/{demo}/fields/{field}/blur", handler.Wrap(s.fieldEvent(blur),
		handler.WithBinders[handler.Context, fieldRequest](path, binder.Signals()),
		handler.WithErrorHandler[handler.Context, fieldRequest](s.errorHandler),
	))
	r.Post("/{demo}/submit", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, submitRequest](path, valuesBinder()),
		handler.WithErrorHandler[handler.Context, submitRequest](s.errorHandler),
	))
	r.Post("/{demo}/reset", handler.Wrap(s.reset,
		handler.WithBinders[handler.Context, demoRequest](path),
		handler.WithErrorHandler[handler.Context, demoRequest](s.errorHandler),
	))

	return r
}

// valuesBinder reads signals from datastar requests and form values from
// plain posts.
func valuesBinder() binder.Func {
	signals, post := binder.Signals(), binder.Form()
	return func(r *http.Request, v any) error {
		if handler.IsDataStar(r) {
			return signals(r, v)
		}
		return post(r, v)
	}
}

// translate binds the translator to the request language.
func (s *Service) translate(ctx context.Context) views.Translate {
	lang := i18n.GetLocale(ctx)
	return func(key string, args ...string) string {
		return s.tr.T(lang, key, args...)
	}
}

func (s *Service) meta(ctx context.Context, title, path string) views.Meta {
	return views.Meta{
		Lang:      i18n.GetLocale(ctx),
		Languages: s.tr.SupportedLanguages(),
		Title:     title,
		Path:      path,
		T:         s.translate(ctx),
	}
}

// messages translates an error map in the request language.
func (s *Service) messages(ctx context.Context, errs form.ErrorMap) map[form.Field]string {
	lang := i18n.GetLocale(ctx)
	out := make(map[form.Field]string, len(errs))
	for f, fe := range errs {
		out[f] = s.tr.Td(lang, fe.Key, fe.Message, i18n.Args(fe.Params)...)
	}
	return out
}

func (s *Service) demoView(ctx context.Context, schema *form.Schema, state form.State) views.Demo {
	return views.Demo{
		Slug:       schema.Name(),
		T:          s.translate(ctx),
		Values:     state.Values,
		Errors:     s.messages(ctx, state.VisibleErrors(schema)),
		Dirty:      state.IsDirty(),
		Valid:      state.IsValid(schema),
		Submitting: state.IsSubmitting(),
		Submitted:  state.Submitted,
	}
}

// statePatches updates every error slot, the submit button and the status
// panel.
func (s *Service) statePatches(ctx context.Context, schema *form.Schema, state form.State) []handler.TemplPatch {
	d := s.demoView(ctx, schema, state)
	patches := make([]handler.TemplPatch, 0, len(form.Fields)+2)
	for _, f := range form.Fields {
		patches = append(patches, handler.Patch(views.FieldError(f, d.Errors[f])))
	}
	return append(patches,
		handler.Patch(views.SubmitButton(d.T, d.Submitting)),
		handler.Patch(views.Status(d.T, d.Dirty, d.Valid, d.Submitting)),
	)
}

// resolve finds the demo schema and the visitor's store key for it.
func (s *Service) resolve(ctx context.Context, demo string) (*form.Schema, string, error) {
	schema, err := form.Lookup(demo)
	if err != nil {
		return nil, "", handler.ErrNotFound
	}
	id := visitor.FromContext(ctx)
	if id == "" {
		return nil, "", ErrNoVisitor
	}
	return schema, id + ":" + schema.Name(), nil
}

func (s *Service) index(ctx handler.Context, _ struct{}) handler.Response {
	t := s.translate(ctx)
	names := form.SchemaNames()
	demos := make([]views.DemoLink, 0, len(names))
	for _, name := range names {
		demos = append(demos, views.DemoLink{
			Href:        "/" + name,
			Title:       t("demo." + name + ".title"),
			Description: t("demo." + name + ".description"),
		})
	}
	return handler.Templ(views.Index(s.meta(ctx, t("app.title"), "/"), demos))
}

func (s *Service) page(ctx handler.Context, req demoRequest) handler.Response {
	schema, key, err := s.resolve(ctx, req.Demo)
	if err != nil {
		return handler.Error(err)
	}
	state, err := s.store.Load(ctx, key)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.renderPage(ctx, schema, state))
}

func (s *Service) renderPage(ctx context.Context, schema *form.Schema, state form.State) templ.Component {
	t := s.translate(ctx)
	meta := s.meta(ctx, t("demo."+schema.Name()+".title"), "/"+schema.Name())
	return views.DemoPage(meta, s.demoView(ctx, schema, state))
}

func blur(s form.State, f form.Field, _ string) form.State {
	return s.Blur(f)
}

// fieldEvent syncs the client's values, applies apply to the addressed
// field and patches every error slot, since a change to one field can
// change another's error.
func (s *Service) fieldEvent(apply func(form.State, form.Field, string) form.State) handler.HandlerFunc[handler.Context, fieldRequest] {
	return func(ctx handler.Context, req fieldRequest) handler.Response {
		schema, key, err := s.resolve(ctx, req.Demo)
		if err != nil {
			return handler.Error(err)
		}
		f, err := form.ParseField(req.Field)
		if err != nil {
			return handler.Error(handler.ErrNotFound)
		}

		state, err := s.store.Update(ctx, key, func(current form.State) (form.State, error) {
			return apply(current.Sync(req.Record), f, req.Record.Get(f)), nil
		})
		if err != nil {
			return handler.Error(err)
		}

		return handler.TemplMulti(s.statePatches(ctx, schema, state)...)
	}
}
