package form

// TouchedSet records the fields that have been blurred at least once.
type TouchedSet map[Field]bool

// Has reports whether f is touched.
func (t TouchedSet) Has(f Field) bool {
	return t[f]
}

// With returns a copy of t that also contains f.
func (t TouchedSet) With(f Field) TouchedSet {
	out := make(TouchedSet, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[f] = true
	return out
}

// All returns a set containing every field.
func All() TouchedSet {
	out := make(TouchedSet, len(Fields))
	for _, f := range Fields {
		out[f] = true
	}
	return out
}
