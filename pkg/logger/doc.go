// Package logger builds slog loggers for formlab.
//
// New returns a *slog.Logger configured with functional options. The handler
// is wrapped in a LogHandlerDecorator so request-scoped values such as the
// request id and the visitor id are added from the context of every
// *Context logging call.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "formlab"),
//	    logger.WithContextExtractors(requestid.LogExtractor, visitor.LogExtractor),
//	)
//	log.InfoContext(ctx, "form submitted", logger.Schema("vanilla"))
//
// The helpers in attr.go keep attribute keys consistent. Error and the id
// helpers return an empty Attr for empty input so callers can skip nil checks.
package logger
