package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formlab/pkg/binder"
	"github.com/dmitrymomot/formlab/pkg/logger"
	"github.com/dmitrymomot/formlab/pkg/requestid"
)

// ErrorPageParams is passed to the error page component.
type ErrorPageParams struct {
	StatusCode int
	Key        string
	Message    string
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to the error toast component.
type ErrorToastParams struct {
	Key       string
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full page for regular requests. Without it a
	// plain text error is written.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a notification for datastar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchInner.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Message    string
	Type       string
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Key:        ErrInternalServerError.Key,
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Key = ErrUnsupportedMedia.Key
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidPath),
		errors.Is(err, binder.ErrInvalidSignals):
		info.StatusCode = http.StatusBadRequest
		info.Key = ErrBadRequest.Key
	}

	info.Message = http.StatusText(info.StatusCode)
	if info.StatusCode < http.StatusInternalServerError {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	} else {
		info.Type = "error"
		info.LogLevel = slog.LevelError
	}
	return info
}

// NewErrorHandler returns an error handler that renders an error page for
// regular requests and patches a toast for datastar requests.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchInner
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())

		if errors.Is(err, context.Canceled) {
			log.DebugContext(r.Context(), "client went away",
				logger.Component("error_handler"),
				logger.Error(err),
			)
			return
		}

		info := classifyError(err)
		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Component("error_handler"),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			renderToast(ctx, cfg, info, reqID, log)
			return
		}
		renderPage(ctx, cfg, info, reqID, log)
	}
}

func renderToast(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, reqID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		return
	}
	sse := ctx.SSE()
	if sse == nil {
		return
	}

	toast := cfg.ErrorToast(ErrorToastParams{
		Key:       info.Key,
		Message:   info.Message,
		Type:      info.Type,
		RequestID: reqID,
	})
	if err := sse.PatchElementTempl(toast,
		datastar.WithSelector(cfg.ToastTarget),
		datastar.WithMode(cfg.ToastMode),
	); err != nil {
		log.Error("failed to render error toast",
			logger.Error(err),
			logger.Event("render_error_toast"),
		)
	}
}

func renderPage(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, reqID string, log *slog.Logger) {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		http.Error(w, info.Message, info.StatusCode)
		return
	}

	page := cfg.ErrorPage(ErrorPageParams{
		StatusCode: info.StatusCode,
		Key:        info.Key,
		Message:    info.Message,
		RequestID:  reqID,
		RetryURL:   ctx.Request().URL.Path,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(info.StatusCode)
	if err := page.Render(ctx, w); err != nil {
		log.Error("failed to render error page",
			logger.Error(err),
			logger.Event("render_error_page"),
		)
	}
}
