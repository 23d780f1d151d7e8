package types

import (
	"time"

	"github.com/google/uuid"
)

// Record is one contact: a name, at most one phone, and an optional
// birthday. The name is fixed at construction.
type Record struct {
	ID       string // UUID v7, generated on creation.
	name     Field[string]
	phone    Field[string]
	birthday Field[time.Time]
}

// NewRecord creates a record for name with no phone. A nil birthday leaves
// the birthday unset. Returns a *ValidationError wrapping ErrInvalidName or
// ErrInvalidBirthday when either value is rejected.
func NewRecord(name string, birthday *time.Time) (*Record, error) {
	r := &Record{
		ID:       newRecordID(),
		name:     NewName(),
		phone:    NewPhone(),
		birthday: NewBirthday(),
	}
	if err := r.name.Set(name); err != nil {
		return nil, err
	}
	if birthday != nil {
		if err := r.SetBirthday(*birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// newRecordID generates a UUID v7, falling back to v4 if v7 generation fails.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Name returns the contact name.
func (r *Record) Name() string {
	v, _ := r.name.Value()
	return v
}

// Phone returns the current phone and whether one is set.
func (r *Record) Phone() (string, bool) {
	return r.phone.Value()
}

// SetPhone validates p and replaces the current phone with it.
func (r *Record) SetPhone(p string) error {
	return r.phone.Set(p)
}

// AddPhone is SetPhone. A record holds a single phone, so adding replaces.
func (r *Record) AddPhone(p string) error {
	return r.SetPhone(p)
}

// RemovePhone clears the phone if it equals p. Otherwise it does nothing.
func (r *Record) RemovePhone(p string) {
	if cur, ok := r.phone.Value(); ok && cur == p {
		r.phone.Clear()
	}
}

// EditPhone replaces the phone with newPhone if the current phone equals
// oldPhone. newPhone is validated first, so an invalid replacement is an
// error even when oldPhone does not match.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	if err := ValidatePhone(newPhone); err != nil {
		return &ValidationError{Field: FieldPhone, Value: newPhone, Err: err}
	}
	if cur, ok := r.phone.Value(); ok && cur == oldPhone {
		return r.phone.Set(newPhone)
	}
	return nil
}

// Birthday returns the birthday date and whether one is set.
func (r *Record) Birthday() (time.Time, bool) {
	return r.birthday.Value()
}

// SetBirthday stores the calendar date of t as the birthday.
func (r *Record) SetBirthday(t time.Time) error {
	if err := validateBirthday(t); err != nil {
		return &ValidationError{Field: FieldBirthday, Value: t, Err: err}
	}
	return r.birthday.Set(dateOf(t))
}

// ClearBirthday removes the birthday.
func (r *Record) ClearBirthday() {
	r.birthday.Clear()
}

// DaysToBirthday returns the days from today to the next birthday. ok is
// false when no birthday is set.
func (r *Record) DaysToBirthday(today time.Time, policy LeapDayPolicy) (days int, ok bool) {
	b, ok := r.birthday.Value()
	if !ok {
		return 0, false
	}
	return DaysUntil(b, today, policy), true
}
