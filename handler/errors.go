package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse       = errors.New("handler returned nil response")
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
	ErrDataStarRequired  = NewHTTPError(http.StatusBadRequest, "datastar_required")
)

// HTTPError is an error with an HTTP status and a stable message key.
type HTTPError struct {
	Code int    `json:"code"`
	Key  string `json:"key"`
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not_found")
	ErrConflict            = NewHTTPError(http.StatusConflict, "conflict")
	ErrUnsupportedMedia    = NewHTTPError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal_server_error")
)

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a response that passes err to the error handler.
func Error(err error) Response {
	return errorResponse{err: err}
}
