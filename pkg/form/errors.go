package form

import "errors"

var (
	ErrUnknownField     = errors.New("form: unknown field")
	ErrUnknownSchema    = errors.New("form: unknown schema")
	ErrSubmitInProgress = errors.New("form: submission already in progress")
	ErrNotSubmitting    = errors.New("form: no submission in progress")
)

// Kind classifies a field failure.
type Kind int

const (
	KindRequired Kind = iota + 1
	KindTooShort
	KindTooLong
	KindFormat
	KindRange
	KindMismatch
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindTooShort:
		return "too_short"
	case KindTooLong:
		return "too_long"
	case KindFormat:
		return "format"
	case KindRange:
		return "range"
	case KindMismatch:
		return "mismatch"
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// FieldError is the first failing rule of a field.
// It is plain data; the engine never reports it as a Go error.
type FieldError struct {
	Field   Field          `json:"field"`
	Kind    Kind           `json:"kind"`
	Rule    string         `json:"rule"`
	Key     string         `json:"key"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// ErrorMap maps a field to its failure. Fields that pass have no entry.
type ErrorMap map[Field]FieldError

func (m ErrorMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

func (m ErrorMap) Get(f Field) (FieldError, bool) {
	e, ok := m[f]
	return e, ok
}

// Message returns the default message for f, or "".
func (m ErrorMap) Message(f Field) string {
	return m[f].Message
}

// Fields returns the failing fields in display order.
func (m ErrorMap) Fields() []Field {
	out := make([]Field, 0, len(m))
	for _, f := range Fields {
		if m.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Messages flattens the map to field name -> message.
func (m ErrorMap) Messages() map[string]string {
	out := make(map[string]string, len(m))
	for f, e := range m {
		out[string(f)] = e.Message
	}
	return out
}

// Only keeps the entries whose field is in touched.
func (m ErrorMap) Only(touched TouchedSet) ErrorMap {
	out := make(ErrorMap, len(m))
	for f, e := range m {
		if touched.Has(f) {
			out[f] = e
		}
	}
	return out
}
