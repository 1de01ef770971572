// Package statemachine provides immutable, generic transition tables for
// finite-state machines.
//
// A Table maps (state, event) to one or more transitions. Each transition
// may carry guards, which veto it based on runtime data, and actions, which
// run before the new state is returned. The table does not hold a current
// state: Fire takes the current state and returns the next one, so the
// caller keeps state wherever it already lives (a struct, a session, a
// database row).
//
// # Usage
//
//	type Phase string
//	type Event string
//
//	table := statemachine.NewBuilder[Phase, Event]().
//	    From("draft").When("submit").To("review").
//	    WithGuard(func(_ Phase, _ Event, data any) bool { return data.(bool) }).
//	    Add().
//	    MustBuild()
//
//	next, err := table.Fire("draft", "submit", true)
//
// # Errors
//
// Fire returns a *TransitionError whose Reason is ErrNoTransition when
// nothing is defined for the pair, or ErrRejected when every candidate was
// vetoed by a guard. IsNoTransition and IsRejected tell them apart.
package statemachine
