package types

// Field names reported in ValidationError.Field.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldBirthday = "birthday"
)

// NewName returns an empty name field. Names must be non-empty; no other
// transformation is applied.
func NewName() Field[string] {
	return NewField(FieldName, validateName)
}

func validateName(v string) error {
	if v == "" {
		return ErrInvalidName
	}
	return nil
}
