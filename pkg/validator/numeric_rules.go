package validator

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)$`)

// radixPrefixes maps the unsigned integer prefixes to their base.
var radixPrefixes = map[string]int{
	"0x": 16, "0X": 16,
	"0o": 8, "0O": 8,
	"0b": 2, "0B": 2,
}

// isNumberSpace matches the whitespace and line terminators Number() trims.
func isNumberSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// ParseNumber converts user input to a float with the grammar of the
// browser's Number(): surrounding whitespace is ignored, a blank string is
// zero, decimals may carry a sign and an exponent, "Infinity" is the only
// spelling of infinity, and 0x, 0o and 0b prefix unsigned integers.
// Anything else, NaN and digit separators included, is not a number.
func ParseNumber(value string) (float64, bool) {
	s := strings.TrimFunc(value, isNumberSpace)
	if s == "" {
		return 0, true
	}
	if len(s) > 2 {
		if base, ok := radixPrefixes[s[:2]]; ok {
			return parseRadix(s[2:], base)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func parseRadix(digits string, base int) (float64, bool) {
	for _, r := range digits {
		if d, ok := digitValue(r); !ok || d >= base {
			return 0, false
		}
	}
	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	n, _ := new(big.Float).SetInt(i).Float64()
	return n, true
}

func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// Numeric validates that a string holds a number.
func Numeric(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseNumber(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.numeric",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Number](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Number](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
