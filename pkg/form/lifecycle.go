package form

import (
	"github.com/dmitrymomot/formlab/pkg/statemachine"
)

// Phase is the submission phase of a form.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

type event string

const (
	eventSubmit   event = "submit"
	eventComplete event = "complete"
	eventEdit     event = "edit"
)

type submission struct {
	schema *Schema
	record Record
}

func recordValid(_ Phase, _ event, data any) bool {
	s, ok := data.(submission)
	return ok && s.schema != nil && s.schema.IsRecordValid(s.record)
}

var lifecycle = statemachine.NewBuilder[Phase, event]().
	From(PhaseEditing).When(eventSubmit).To(PhaseSubmitting).WithGuard(recordValid).Add().
	From(PhaseSubmitted).When(eventSubmit).To(PhaseSubmitting).WithGuard(recordValid).Add().
	From(PhaseSubmitting).When(eventComplete).To(PhaseSubmitted).Add().
	From(PhaseSubmitted).When(eventEdit).To(PhaseEditing).Add().
	MustBuild()
