package formstore

import (
	"context"
	"time"

	"github.com/dmitrymomot/formlab/pkg/form"
)

// DefaultTTL is how long an idle visitor's form survives.
const DefaultTTL = 30 * time.Minute

// UpdateFunc computes the next state from the stored one. Returning an
// error leaves the stored state unchanged.
type UpdateFunc func(current form.State) (form.State, error)

// Store keeps one form.State per visitor id.
// Load returns the zero State for unknown or expired ids.
//
// Update runs fn on the stored state and saves its result as one atomic
// step: no other Update, Save or Delete of the same id lands in between.
// It returns the saved state, or fn's state and error when fn fails.
type Store interface {
	Load(ctx context.Context, id string) (form.State, error)
	Save(ctx context.Context, id string, state form.State) error
	Update(ctx context.Context, id string, fn UpdateFunc) (form.State, error)
	Delete(ctx context.Context, id string) error
}

// Backend names accepted by FORM_STORE.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)
