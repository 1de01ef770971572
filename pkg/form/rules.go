package form

import (
	"fmt"

	"github.com/dmitrymomot/formlab/pkg/validator"
)

// MaxLength is the longest accepted value of any field, in runes.
const MaxLength = 1024

// Check builds the validator rule for one field value.
// The record gives cross-field rules access to the other fields.
type Check func(field Field, value string, record Record) validator.Rule

// Rule is one entry of a field's ordered rule list.
type Rule struct {
	Name    string // rule id, last segment of the translation key
	Kind    Kind
	Message string // default (English) message
	Check   Check
}

// Schema maps every field to its ordered rule list.
// A Schema is immutable once built and safe for concurrent use.
type Schema struct {
	name  string
	rules map[Field][]Rule
}

// NewSchema copies rules into a new schema.
func NewSchema(name string, rules map[Field][]Rule) *Schema {
	s := &Schema{name: name, rules: make(map[Field][]Rule, len(rules))}
	for f, list := range rules {
		s.rules[f] = append([]Rule(nil), list...)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Rules returns a copy of the rule list of f.
func (s *Schema) Rules(f Field) []Rule {
	return append([]Rule(nil), s.rules[f]...)
}

// Extend returns a new schema with rule inserted into the list of f right
// after the rule named after. When after is empty or not found the rule is
// appended.
func (s *Schema) Extend(name string, f Field, after string, rule Rule) *Schema {
	next := NewSchema(name, s.rules)
	list := next.rules[f]
	at := len(list)
	for i, r := range list {
		if r.Name == after {
			at = i + 1
			break
		}
	}
	list = append(list, Rule{})
	copy(list[at+1:], list[at:])
	list[at] = rule
	next.rules[f] = list
	return next
}

func nonEmpty(f Field, value string, _ Record) validator.Rule {
	return validator.NonEmpty(f.String(), value)
}

func minLen(n int) Check {
	return func(f Field, value string, _ Record) validator.Rule {
		return validator.MinLen(f.String(), value, n)
	}
}

func maxLen(n int) Check {
	return func(f Field, value string, _ Record) validator.Rule {
		return validator.MaxLen(f.String(), value, n)
	}
}

// tooLong caps a field at MaxLength. Every field lists it right after
// its required rule.
func tooLong(label string) Rule {
	return Rule{
		Name:    "max_length",
		Kind:    KindTooLong,
		Message: fmt.Sprintf("%s must be at most %d characters", label, MaxLength),
		Check:   maxLen(MaxLength),
	}
}

func emailFormat(f Field, value string, _ Record) validator.Rule {
	return validator.Email(f.String(), value)
}

func numeric(f Field, value string, _ Record) validator.Rule {
	return validator.Numeric(f.String(), value)
}

// minNum and maxNum run after numeric, so the parse cannot fail here.
func minNum(min float64) Check {
	return func(f Field, value string, _ Record) validator.Rule {
		n, _ := validator.ParseNumber(value)
		return validator.MinNum(f.String(), n, min)
	}
}

func maxNum(max float64) Check {
	return func(f Field, value string, _ Record) validator.Rule {
		n, _ := validator.ParseNumber(value)
		return validator.MaxNum(f.String(), n, max)
	}
}

func matches(other Field) Check {
	return func(f Field, value string, r Record) validator.Rule {
		return validator.EqualTo(f.String(), value, other.String(), r.Get(other))
	}
}

func passwordStrength(f Field, value string, _ Record) validator.Rule {
	return validator.PasswordCharClasses(f.String(), value)
}

// Vanilla is the hand-written rule table of the demo form.
var Vanilla = NewSchema("vanilla", map[Field][]Rule{
	Name: {
		{Name: "required", Kind: KindRequired, Message: "Please enter your name", Check: nonEmpty},
		tooLong("Name"),
		{Name: "min_length", Kind: KindTooShort, Message: "Name must be at least 2 characters", Check: minLen(2)},
	},
	Email: {
		{Name: "required", Kind: KindRequired, Message: "Please enter your email", Check: nonEmpty},
		tooLong("Email"),
		{Name: "format", Kind: KindFormat, Message: "Email address is not valid", Check: emailFormat},
	},
	Age: {
		{Name: "required", Kind: KindRequired, Message: "Please enter your age", Check: nonEmpty},
		tooLong("Age"),
		{Name: "number", Kind: KindFormat, Message: "Age must be a number", Check: numeric},
		{Name: "min", Kind: KindRange, Message: "You must be at least 18 years old", Check: minNum(18)},
		{Name: "max", Kind: KindRange, Message: "Age must be 100 or less", Check: maxNum(100)},
	},
	Password: {
		{Name: "required", Kind: KindRequired, Message: "Please enter a password", Check: nonEmpty},
		tooLong("Password"),
		{Name: "min_length", Kind: KindTooShort, Message: "Password must be at least 8 characters", Check: minLen(8)},
	},
	ConfirmPassword: {
		{Name: "required", Kind: KindRequired, Message: "Please confirm your password", Check: nonEmpty},
		tooLong("Password confirmation"),
		{Name: "mismatch", Kind: KindMismatch, Message: "Passwords do not match", Check: matches(Password)},
	},
})

// Strict adds a character-class password rule after the length rule.
var Strict = Vanilla.Extend("strict", Password, "min_length", Rule{
	Name:    "strength",
	Kind:    KindFormat,
	Message: "Password must contain upper case, lower case and a digit",
	Check:   passwordStrength,
})

var schemas = map[string]*Schema{
	Vanilla.Name(): Vanilla,
	Strict.Name():  Strict,
}

// Lookup returns a built-in schema by name.
func Lookup(name string) (*Schema, error) {
	s, ok := schemas[name]
	if !ok {
		return nil, ErrUnknownSchema
	}
	return s, nil
}

// SchemaNames lists the built-in schemas in display order.
func SchemaNames() []string {
	return []string{Vanilla.Name(), Strict.Name()}
}
