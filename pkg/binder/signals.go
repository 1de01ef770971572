package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals binds datastar signals to fields by their json tags. GET requests
// carry the signals in the datastar query parameter, every other method in
// the body. Signals the target does not declare are ignored.
func Signals() Func {
	return func(r *http.Request, v any) error {
		if _, err := structValue(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}
