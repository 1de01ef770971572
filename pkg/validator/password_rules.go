package validator

import "unicode"

// PasswordCharClasses validates that a password mixes lower case, upper
// case and digits. Only ASCII letters and digits count toward a class.
func PasswordCharClasses(field, value string) Rule {
	return Rule{
		Check: func() bool {
			var lower, upper, digit bool
			for _, r := range value {
				switch {
				case r > unicode.MaxASCII:
				case unicode.IsLower(r):
					lower = true
				case unicode.IsUpper(r):
					upper = true
				case unicode.IsDigit(r):
					digit = true
				}
			}
			return lower && upper && digit
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain upper case, lower case and a digit",
			TranslationKey: "validation.password_classes",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
