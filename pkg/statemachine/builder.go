package statemachine

// Builder provides a fluent API for building transition tables.
type Builder[S, E comparable] struct {
	table   *Table[S, E]
	current Transition[S, E]
	started bool
	err     error
}

// NewBuilder creates an empty builder.
func NewBuilder[S, E comparable]() *Builder[S, E] {
	return &Builder[S, E]{table: newTable[S, E]()}
}

// From starts a new transition from state.
func (b *Builder[S, E]) From(state S) *Builder[S, E] {
	b.current = Transition[S, E]{From: state}
	b.started = true
	return b
}

// When sets the event that triggers the transition.
func (b *Builder[S, E]) When(event E) *Builder[S, E] {
	b.current.Event = event
	return b
}

// To sets the target state.
func (b *Builder[S, E]) To(state S) *Builder[S, E] {
	b.current.To = state
	return b
}

// WithGuard adds a guard to the current transition.
func (b *Builder[S, E]) WithGuard(guard Guard[S, E]) *Builder[S, E] {
	b.current.Guards = append(b.current.Guards, guard)
	return b
}

// WithAction adds an action to the current transition.
func (b *Builder[S, E]) WithAction(action Action[S, E]) *Builder[S, E] {
	b.current.Actions = append(b.current.Actions, action)
	return b
}

// Add finalizes the current transition.
func (b *Builder[S, E]) Add() *Builder[S, E] {
	if !b.started {
		if b.err == nil {
			b.err = ErrInvalidTransition
		}
		return b
	}
	b.table.add(b.current)
	b.current = Transition[S, E]{}
	b.started = false
	return b
}

// Build returns the table, or the first error recorded while building.
func (b *Builder[S, E]) Build() (*Table[S, E], error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.table, nil
}

// MustBuild is like Build but panics on error. Intended for package-level tables.
func (b *Builder[S, E]) MustBuild() *Table[S, E] {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
