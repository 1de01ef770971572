// Package validator provides small, composable validation rules.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Rule constructors capture the value under test, so a Rule is cheap to
// build and can be evaluated any number of times with the same result.
// Apply evaluates a list of rules and aggregates every failure into a
// ValidationErrors slice, which implements error.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.Email("email", email),
//	    validator.MinNum("age", age, 18),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Has("email"), verrs.Fields(), ...
//	}
//
// First is the "first failing rule wins" variant: it stops at the first
// false Check, so later rules may rely on earlier ones.
//
//	err := validator.First(
//	    validator.NonEmpty("age", age),
//	    validator.Numeric("age", age),
//	)
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed through errors.Is.
//
// The package holds no global mutable state and is safe for concurrent use.
package validator
