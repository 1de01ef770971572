package statemachine

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition reports Add called on a builder with no From.
var ErrInvalidTransition = errors.New("statemachine: Add called before From")

// Reasons a Fire call leaves the machine where it was.
var (
	ErrNoTransition = errors.New("no transition defined")
	ErrRejected     = errors.New("rejected by every guard")
)

// TransitionError is returned by Fire when the machine does not move.
// Reason is ErrNoTransition or ErrRejected and is reachable with errors.Is.
type TransitionError struct {
	State  string
	Event  string
	Reason error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("statemachine: event %q in state %q: %v", e.Event, e.State, e.Reason)
}

func (e *TransitionError) Unwrap() error { return e.Reason }

func IsNoTransition(err error) bool { return errors.Is(err, ErrNoTransition) }

func IsRejected(err error) bool { return errors.Is(err, ErrRejected) }
