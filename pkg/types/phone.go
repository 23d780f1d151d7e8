package types

// NewPhone returns an empty phone field. A phone is one or more ASCII digits.
func NewPhone() Field[string] {
	return NewField(FieldPhone, ValidatePhone)
}

// ValidatePhone returns ErrInvalidPhone unless p is a non-empty string of
// the characters 0-9.
func ValidatePhone(p string) error {
	if p == "" {
		return ErrInvalidPhone
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return ErrInvalidPhone
		}
	}
	return nil
}
