// Package handler turns typed handler functions into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request value filled by binders
// from pkg/binder, and returns a Response. Responses render themselves and
// adapt to the caller: datastar requests get server-sent events that patch
// elements or signals, regular requests get HTML, JSON or redirects.
//
//	type fieldEvent struct {
//		Demo  string `path:"demo"`
//		Field string `path:"field"`
//		form.Record
//	}
//
//	r.Post("/{demo}/fields/{field}/change", handler.Wrap(
//		func(ctx handler.Context, ev fieldEvent) handler.Response {
//			return handler.TemplMulti(errorSlots(ev)...)
//		},
//		handler.WithBinders[handler.Context, fieldEvent](
//			binder.Path(chi.URLParam),
//			binder.Signals(),
//		),
//	))
//
// Binding and rendering errors go to an ErrorHandler. NewErrorHandler
// classifies them (HTTPError, binder failures, everything else as 500),
// logs them and renders an error page or a datastar toast.
//
// SSE starts a long running stream with a StreamContext, used for flows
// that send several updates, such as a delayed form submission.
package handler
