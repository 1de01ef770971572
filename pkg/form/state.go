package form

import (
	"maps"

	"github.com/dmitrymomot/formlab/pkg/statemachine"
)

// State is everything a visitor's form holds between events.
// Every method returns a new State and leaves the receiver untouched.
type State struct {
	Values    Record     `json:"values"`
	Touched   TouchedSet `json:"touched,omitempty"`
	Phase     Phase      `json:"phase,omitempty"`
	Pending   *Record    `json:"pending,omitempty"`
	Submitted *Record    `json:"submitted,omitempty"`
}

// CurrentPhase treats the zero phase as editing.
func (s State) CurrentPhase() Phase {
	if s.Phase == "" {
		return PhaseEditing
	}
	return s.Phase
}

// IsSubmitting reports whether a submission is waiting for Complete.
func (s State) IsSubmitting() bool {
	return s.CurrentPhase() == PhaseSubmitting
}

// Change sets the value of f. A submitted form goes back to editing.
func (s State) Change(f Field, value string) State {
	s.Values = s.Values.With(f, value)
	return s.edited()
}

// Sync replaces all values with a snapshot sent by the client.
func (s State) Sync(record Record) State {
	if record == s.Values {
		return s
	}
	s.Values = record
	return s.edited()
}

func (s State) edited() State {
	if next, err := lifecycle.Fire(s.CurrentPhase(), eventEdit, nil); err == nil {
		s.Phase = next
	}
	return s
}

// Blur marks f as touched.
func (s State) Blur(f Field) State {
	s.Touched = s.Touched.With(f)
	return s
}

// Submit touches every field and validates the record.
// An invalid record is refused: the returned map is non-empty and the phase
// does not change. A valid record moves the form to PhaseSubmitting and is
// kept as Pending until Complete.
func (s State) Submit(schema *Schema) (State, ErrorMap, error) {
	s.Touched = All()
	errs := schema.ValidateRecord(s.Values)
	if s.IsSubmitting() {
		return s, errs, ErrSubmitInProgress
	}

	next, err := lifecycle.Fire(s.CurrentPhase(), eventSubmit, submission{schema: schema, record: s.Values})
	if err != nil {
		if statemachine.IsRejected(err) {
			return s, errs, nil
		}
		return s, errs, err
	}

	pending := s.Values
	s.Phase = next
	s.Pending = &pending
	return s, errs, nil
}

// Complete finishes a pending submission: the pending record becomes
// Submitted and the values and touched set are cleared.
func (s State) Complete() (State, error) {
	next, err := lifecycle.Fire(s.CurrentPhase(), eventComplete, nil)
	if err != nil || s.Pending == nil {
		return s, ErrNotSubmitting
	}
	return State{Phase: next, Submitted: s.Pending}, nil
}

// Reset returns the empty form.
func (s State) Reset() State {
	return State{}
}

// Errors derives the error map from the current values.
func (s State) Errors(schema *Schema) ErrorMap {
	return schema.ValidateRecord(s.Values)
}

// VisibleErrors keeps the errors of touched fields only.
func (s State) VisibleErrors(schema *Schema) ErrorMap {
	return s.Errors(schema).Only(s.Touched)
}

// IsValid reports whether the current values would be accepted by Submit.
func (s State) IsValid(schema *Schema) bool {
	return schema.IsRecordValid(s.Values)
}

// IsDirty reports whether any value has been entered.
func (s State) IsDirty() bool {
	return s.Values.IsDirty()
}

// Clone returns a deep copy that shares nothing with s.
func (s State) Clone() State {
	s.Touched = maps.Clone(s.Touched)
	if s.Pending != nil {
		p := *s.Pending
		s.Pending = &p
	}
	if s.Submitted != nil {
		sub := *s.Submitted
		s.Submitted = &sub
	}
	return s
}
