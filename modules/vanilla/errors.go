package vanilla

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formlab/handler"
)

var (
	ErrNoVisitor     = errors.New("vanilla: request has no visitor id")
	ErrUnknownSchema = handler.NewHTTPError(http.StatusBadRequest, "unknown_schema")
)
