package form

// Field names a single input of the demo form.
type Field string

const (
	Name            Field = "name"
	Email           Field = "email"
	Age             Field = "age"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
)

// Fields lists every field in display order.
var Fields = []Field{Name, Email, Age, Password, ConfirmPassword}

func (f Field) String() string { return string(f) }

// ParseField converts a raw name into a Field.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrUnknownField
}
