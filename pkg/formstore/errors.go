package formstore

import "errors"

var (
	ErrEmptyID        = errors.New("formstore: empty visitor id")
	ErrUnknownBackend = errors.New("formstore: unknown backend")
	ErrLoadFailed     = errors.New("formstore: failed to load form state")
	ErrSaveFailed     = errors.New("formstore: failed to save form state")
	ErrDeleteFailed   = errors.New("formstore: failed to delete form state")
	ErrUpdateConflict = errors.New("formstore: form state kept changing during update")
)
