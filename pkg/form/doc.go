// Package form implements the validation engine of the demo form.
//
// A Schema maps each Field to an ordered list of rules. ValidateField runs
// the list and reports the first failure as a FieldError; ValidateRecord does
// that for every field and returns an ErrorMap. Failures are data: nothing in
// this package returns a Go error or panics because of what a user typed.
//
// State carries the record, the touched set and the submission phase between
// events. Its methods are pure and return the next state:
//
//	s := form.State{}
//	s = s.Change(form.Email, "a@b")
//	s = s.Blur(form.Email)
//	visible := s.VisibleErrors(form.Vanilla) // email: format
//
//	next, errs, err := s.Submit(form.Vanilla)
//	if err == nil && next.IsSubmitting() {
//	    // wait, then
//	    next, err = next.Complete()
//	}
//
// The error map is always recomputed from the values, so a confirmPassword
// error follows the current password without extra bookkeeping. The touched
// set only decides which errors are shown.
package form
