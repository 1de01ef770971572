package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidQuery         = errors.New("failed to parse query parameters")
	ErrInvalidPath          = errors.New("failed to parse path parameters")
	ErrInvalidSignals       = errors.New("failed to read datastar signals")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
)
