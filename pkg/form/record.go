package form

// Record holds the current string value of every field.
// The zero value is the empty form.
type Record struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Age             string `json:"age" form:"age"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// Get returns the value of f, or "" for an unknown field.
func (r Record) Get(f Field) string {
	switch f {
	case Name:
		return r.Name
	case Email:
		return r.Email
	case Age:
		return r.Age
	case Password:
		return r.Password
	case ConfirmPassword:
		return r.ConfirmPassword
	}
	return ""
}

// With returns a copy of r with f set to value. Unknown fields are ignored.
func (r Record) With(f Field, value string) Record {
	switch f {
	case Name:
		r.Name = value
	case Email:
		r.Email = value
	case Age:
		r.Age = value
	case Password:
		r.Password = value
	case ConfirmPassword:
		r.ConfirmPassword = value
	}
	return r
}

// IsDirty reports whether any field holds a value.
func (r Record) IsDirty() bool {
	return r != Record{}
}

// IsComplete reports whether every field holds a value.
func (r Record) IsComplete() bool {
	for _, f := range Fields {
		if r.Get(f) == "" {
			return false
		}
	}
	return true
}
