package statemachine

import "fmt"

// Guard evaluates whether a transition should be allowed based on runtime data.
type Guard[S, E comparable] func(from S, event E, data any) bool

// Action executes side effects during a transition. Returning an error prevents the transition.
type Action[S, E comparable] func(from, to S, event E, data any) error

// Transition defines a state change triggered by an event, with optional guards and actions.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for transition to proceed
	Actions []Action[S, E] // Executed in order before the new state is returned
}

// Table is an immutable transition table. It never stores a current state:
// callers pass the state in and get the next state back, which keeps the
// table safe to share between goroutines.
type Table[S, E comparable] struct {
	transitions map[S]map[E][]Transition[S, E]
	events      map[S][]E
}

func newTable[S, E comparable]() *Table[S, E] {
	return &Table[S, E]{
		transitions: make(map[S]map[E][]Transition[S, E]),
		events:      make(map[S][]E),
	}
}

func (t *Table[S, E]) add(tr Transition[S, E]) {
	if _, ok := t.transitions[tr.From]; !ok {
		t.transitions[tr.From] = make(map[E][]Transition[S, E])
	}
	if _, ok := t.transitions[tr.From][tr.Event]; !ok {
		t.events[tr.From] = append(t.events[tr.From], tr.Event)
	}
	// Multiple transitions allowed for same from/event to support guard-based branching
	t.transitions[tr.From][tr.Event] = append(t.transitions[tr.From][tr.Event], tr)
}

// Fire returns the state reached from current by event.
// The first transition whose guards all pass wins.
func (t *Table[S, E]) Fire(current S, event E, data any) (S, error) {
	candidates := t.transitions[current][event]
	if len(candidates) == 0 {
		return current, &TransitionError{State: fmt.Sprint(current), Event: fmt.Sprint(event), Reason: ErrNoTransition}
	}

	tr, ok := firstAllowed(candidates, current, event, data)
	if !ok {
		return current, &TransitionError{State: fmt.Sprint(current), Event: fmt.Sprint(event), Reason: ErrRejected}
	}

	for _, action := range tr.Actions {
		if action == nil {
			continue
		}
		if err := action(current, tr.To, event, data); err != nil {
			return current, fmt.Errorf("action failed: %w", err)
		}
	}

	return tr.To, nil
}

// CanFire reports whether Fire would succeed, without running actions.
func (t *Table[S, E]) CanFire(current S, event E, data any) bool {
	_, ok := firstAllowed(t.transitions[current][event], current, event, data)
	return ok
}

// Events lists the events defined for a state in the order they were added.
func (t *Table[S, E]) Events(current S) []E {
	events := t.events[current]
	out := make([]E, len(events))
	copy(out, events)
	return out
}

func firstAllowed[S, E comparable](candidates []Transition[S, E], current S, event E, data any) (Transition[S, E], bool) {
	for _, tr := range candidates {
		allowed := true
		for _, guard := range tr.Guards {
			if guard != nil && !guard(current, event, data) {
				allowed = false
				break
			}
		}
		if allowed {
			return tr, true
		}
	}
	return Transition[S, E]{}, false
}
