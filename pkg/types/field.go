package types

// Validator checks a candidate field value. It returns nil when the value is
// acceptable and a sentinel error otherwise.
type Validator[T any] func(T) error

// Field holds a single validated value. The zero Field has no value and
// accepts anything; use NewField to attach a rule.
type Field[T any] struct {
	name     string
	value    T
	set      bool
	validate Validator[T]
}

// NewField returns an empty field named name that admits values accepted by
// validate.
func NewField[T any](name string, validate func(T) error) Field[T] {
	return Field[T]{name: name, validate: validate}
}

// Set validates v and stores it. On failure it returns a *ValidationError and
// the previous value is kept.
func (f *Field[T]) Set(v T) error {
	if f.validate != nil {
		if err := f.validate(v); err != nil {
			return &ValidationError{Field: f.name, Value: v, Err: err}
		}
	}
	f.value = v
	f.set = true
	return nil
}

// Value returns the stored value and whether one has been set.
func (f *Field[T]) Value() (T, bool) {
	return f.value, f.set
}

// Clear removes the stored value.
func (f *Field[T]) Clear() {
	var zero T
	f.value = zero
	f.set = false
}

// IsSet reports whether the field holds a value.
func (f *Field[T]) IsSet() bool {
	return f.set
}
