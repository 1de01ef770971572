package vanilla

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/formlab/handler"
	"github.com/dmitrymomot/formlab/pkg/async"
	"github.com/dmitrymomot/formlab/pkg/form"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/sanitizer"
	"github.com/dmitrymomot/formlab/views"
)

// logValueLength caps the submitted values written to the log, in runes.
const logValueLength = 64

var logValue = sanitizer.Compose(sanitizer.Limit(logValueLength))

// submit validates once, then either refuses the record and shows every
// error, or waits the submit delay and shows the submitted record.
func (s *Service) submit(ctx handler.Context, req submitRequest) handler.Response {
	schema, key, err := s.resolve(ctx, req.Demo)
	if err != nil {
		return handler.Error(err)
	}

	var errs form.ErrorMap
	next, err := s.store.Update(ctx, key, func(current form.State) (form.State, error) {
		submitted, refused, err := current.Sync(req.Record).Submit(schema)
		errs = refused
		return submitted, err
	})
	switch {
	case errors.Is(err, form.ErrSubmitInProgress):
		return handler.Error(handler.ErrConflict)
	case err != nil:
		return handler.Error(err)
	}

	datastar := handler.IsDataStar(ctx.Request())

	if !next.IsSubmitting() {
		s.log.InfoContext(ctx, "submit refused",
			logger.Event("submit_refused"),
			logger.Schema(schema.Name()),
			slog.Any("fields", errs.Fields()),
		)
		if datastar {
			return handler.TemplMulti(s.statePatches(ctx, schema, next)...)
		}
		return handler.Templ(s.renderPage(ctx, schema, next))
	}

	// Detached from the request: the stored state must always leave the
	// submitting phase.
	job := async.After(context.WithoutCancel(ctx), s.delay, func(jctx context.Context) (form.State, error) {
		return s.complete(jctx, schema, key)
	})

	if !datastar {
		if _, err := job.AwaitContext(ctx); err != nil {
			return handler.Error(err)
		}
		return handler.Redirect("/" + schema.Name())
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendSignals(map[string]any{"submitting": true}); err != nil {
			return err
		}
		if err := stream.SendMultiple(s.statePatches(stream, schema, next)...); err != nil {
			return err
		}

		done, err := job.AwaitContext(stream)
		if err != nil {
			return err
		}
		return s.sendForm(stream, schema, done)
	})
}

// complete finishes the pending submission stored under key. A submission
// whose state was reset in the meantime is dropped.
func (s *Service) complete(ctx context.Context, schema *form.Schema, key string) (form.State, error) {
	done, err := s.store.Update(ctx, key, form.State.Complete)
	if errors.Is(err, form.ErrNotSubmitting) {
		s.log.InfoContext(ctx, "submission dropped",
			logger.Event("submit_dropped"),
			logger.Schema(schema.Name()),
		)
		return done, nil
	}
	if err != nil {
		return form.State{}, err
	}

	rec := *done.Submitted
	s.log.InfoContext(ctx, "form submitted",
		logger.Event("submit"),
		logger.Schema(schema.Name()),
		logger.Duration(s.delay),
		logger.Group("record",
			slog.String("name", logValue(rec.Name)),
			slog.String("email", sanitizer.Apply(rec.Email, sanitizer.MaskEmail, sanitizer.Limit(logValueLength))),
			slog.String("age", logValue(rec.Age)),
			slog.String("password", sanitizer.Redact(rec.Password)),
			slog.String("confirm_password", sanitizer.Redact(rec.ConfirmPassword)),
		),
	)
	return done, nil
}

// reset clears the visitor's form for the demo.
func (s *Service) reset(ctx handler.Context, req demoRequest) handler.Response {
	schema, key, err := s.resolve(ctx, req.Demo)
	if err != nil {
		return handler.Error(err)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return handler.Error(err)
	}
	s.log.DebugContext(ctx, "form reset", logger.Event("reset"), logger.Schema(schema.Name()))

	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect("/" + schema.Name())
	}
	return handler.SSE(func(stream handler.StreamContext) error {
		return s.sendForm(stream, schema, form.State{}.Reset())
	})
}

// sendForm replaces the signals, the form and both panels with state.
func (s *Service) sendForm(stream handler.StreamContext, schema *form.Schema, state form.State) error {
	if err := stream.SendSignals(views.Signals(state.Values, state.IsSubmitting())); err != nil {
		return err
	}
	d := s.demoView(stream, schema, state)
	return stream.SendMultiple(
		handler.Patch(views.Form(d)),
		handler.Patch(views.Result(d.T, d.Submitted)),
		handler.Patch(views.Status(d.T, d.Dirty, d.Valid, d.Submitting)),
	)
}
