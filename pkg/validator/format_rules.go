package validator

import (
	"fmt"
	"regexp"
)

// emailPattern matches local@domain.tld with no whitespace and a single '@'.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// Email validates the loose local@domain.tld shape of an email address.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailPattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MatchesRegex validates a value against a precompiled pattern.
func MatchesRegex(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern.String(),
				"description": description,
			},
		},
	}
}
