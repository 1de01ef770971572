package vanilla

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/pkg/binder"
	"github.com/dmitrymomot/formlab/pkg/form"
	"github.com/dmitrymomot/formlab/pkg/i18n"
	"github.com/dmitrymomot/formlab/pkg/logger"
)

// API validates records sent as JSON. It keeps no state.
type API struct {
	tr  *i18n.Translator
	log *slog.Logger
}

// NewAPI returns the JSON validation API. A nil logger uses slog.Default.
func NewAPI(tr *i18n.Translator, log *slog.Logger) *API {
	if log == nil {
		log = slog.Default()
	}
	return &API{tr: tr, log: log.With(logger.Component("vanilla_api"))}
}

type validateRequest struct {
	Schema string `query:"schema" json:"-"`
	form.Record
}

type validateFieldRequest struct {
	Schema string `query:"schema" json:"-"`
	Field  string `path:"field" json:"-"`
	form.Record
}

// FieldResult is the outcome of one field.
type FieldResult struct {
	Field   form.Field `json:"field"`
	Valid   bool       `json:"valid"`
	Kind    form.Kind  `json:"kind,omitempty"`
	Key     string     `json:"key,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ValidationResult is the outcome of a whole record.
type ValidationResult struct {
	Schema string                `json:"schema"`
	Valid  bool                  `json:"valid"`
	Errors map[form.Field]string `json:"errors"`
}

func (a *API) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/validate", handler.Wrap(a.validate,
		handler.WithBinders[handler.Context, validateRequest](binder.Query(), binder.JSON()),
		handler.WithErrorHandler[handler.Context, validateRequest](a.handleError),
	))
	r.Post("/validate/{field}", handler.Wrap(a.validateField,
		handler.WithBinders[handler.Context, validateFieldRequest](
			binder.Path(chi.URLParam),
			binder.Query(),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, validateFieldRequest](a.handleError),
	))

	return r
}

// handleError answers every failure in the JSON envelope.
func (a *API) handleError(ctx handler.Context, err error) {
	a.log.DebugContext(ctx, "validation request failed", logger.Error(err))
	if err := handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		a.log.ErrorContext(ctx, "failed to write error response", logger.Error(err))
	}
}

func (a *API) schema(name string) (*form.Schema, error) {
	if name == "" {
		return form.Vanilla, nil
	}
	schema, err := form.Lookup(name)
	if err != nil {
		return nil, ErrUnknownSchema
	}
	return schema, nil
}

func (a *API) message(ctx context.Context, fe form.FieldError) string {
	return a.tr.Td(i18n.GetLocale(ctx), fe.Key, fe.Message, i18n.Args(fe.Params)...)
}

func (a *API) validate(ctx handler.Context, req validateRequest) handler.Response {
	schema, err := a.schema(req.Schema)
	if err != nil {
		return handler.JSONError(err)
	}

	errs := schema.ValidateRecord(req.Record)
	out := ValidationResult{
		Schema: schema.Name(),
		Valid:  schema.IsRecordValid(req.Record),
		Errors: make(map[form.Field]string, len(errs)),
	}
	for f, fe := range errs {
		out.Errors[f] = a.message(ctx, fe)
	}
	return handler.JSON(out)
}

func (a *API) validateField(ctx handler.Context, req validateFieldRequest) handler.Response {
	schema, err := a.schema(req.Schema)
	if err != nil {
		return handler.JSONError(err)
	}
	f, err := form.ParseField(req.Field)
	if err != nil {
		return handler.JSONError(handler.ErrNotFound)
	}

	fe, failed := schema.ValidateField(f, req.Record.Get(f), req.Record)
	if !failed {
		return handler.JSON(FieldResult{Field: f, Valid: true})
	}
	return handler.JSON(FieldResult{
		Field:   f,
		Kind:    fe.Kind,
		Key:     fe.Key,
		Message: a.message(ctx, fe),
	})
}
