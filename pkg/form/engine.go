package form

import (
	"github.com/dmitrymomot/formlab/pkg/validator"
)

// ValidateField returns the first failing rule of f for value.
// The second result is false when every rule passes.
func (s *Schema) ValidateField(f Field, value string, record Record) (FieldError, bool) {
	for _, rule := range s.rules[f] {
		err := validator.First(rule.Check(f, value, record))
		if err == nil {
			continue
		}
		fe := FieldError{
			Field:   f,
			Kind:    rule.Kind,
			Rule:    rule.Name,
			Key:     "form." + f.String() + "." + rule.Name,
			Message: rule.Message,
		}
		if ve := validator.ExtractValidationErrors(err); len(ve) > 0 {
			fe.Params = ve[0].TranslationValues
		}
		return fe, true
	}
	return FieldError{}, false
}

// ValidateRecord validates every field and keeps the failures.
func (s *Schema) ValidateRecord(record Record) ErrorMap {
	errs := make(ErrorMap)
	for _, f := range Fields {
		if fe, ok := s.ValidateField(f, record.Get(f), record); ok {
			errs[f] = fe
		}
	}
	return errs
}

// IsRecordValid reports whether no field fails and every field is filled in.
func (s *Schema) IsRecordValid(record Record) bool {
	return len(s.ValidateRecord(record)) == 0 && record.IsComplete()
}

// ValidateField validates one field against the Vanilla schema.
func ValidateField(f Field, value string, record Record) (FieldError, bool) {
	return Vanilla.ValidateField(f, value, record)
}

// ValidateRecord validates a record against the Vanilla schema.
func ValidateRecord(record Record) ErrorMap {
	return Vanilla.ValidateRecord(record)
}

// IsRecordValid checks a record against the Vanilla schema.
func IsRecordValid(record Record) bool {
	return Vanilla.IsRecordValid(record)
}
