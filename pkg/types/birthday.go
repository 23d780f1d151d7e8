package types

import "time"

// LeapDayPolicy decides where a Feb 29 birthday falls in a non-leap year.
type LeapDayPolicy string

// Recognized leap-day policies.
const (
	LeapDayFeb28 LeapDayPolicy = "feb28"
	LeapDayMar1  LeapDayPolicy = "mar1"
)

// DefaultLeapDayPolicy is used when no policy is configured.
const DefaultLeapDayPolicy = LeapDayFeb28

// Valid reports whether p is a recognized policy.
func (p LeapDayPolicy) Valid() bool {
	return p == LeapDayFeb28 || p == LeapDayMar1
}

const hoursPerDay = 24

// NewBirthday returns an empty birthday field. A set birthday is a non-zero
// time; only its calendar date is meaningful.
func NewBirthday() Field[time.Time] {
	return NewField(FieldBirthday, validateBirthday)
}

func validateBirthday(t time.Time) error {
	if t.IsZero() {
		return ErrInvalidBirthday
	}
	return nil
}

// dateOf strips the clock and location from t, keeping its calendar date as
// read in t's own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// occurrence returns the birthday's date in the given year. Feb 29 in a
// non-leap year is placed according to policy.
func occurrence(birthday time.Time, year int, policy LeapDayPolicy) time.Time {
	m, d := birthday.Month(), birthday.Day()
	if m == time.February && d == 29 && !isLeap(year) {
		if policy == LeapDayMar1 {
			return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
		}
		d = 28
	}
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// NextBirthday returns the first occurrence of birthday on or after today.
func NextBirthday(birthday, today time.Time, policy LeapDayPolicy) time.Time {
	today = dateOf(today)
	next := occurrence(birthday, today.Year(), policy)
	if next.Before(today) {
		next = occurrence(birthday, today.Year()+1, policy)
	}
	return next
}

// DaysUntil returns the number of whole days from today to the next
// occurrence of birthday. It is 0 when the birthday is today.
func DaysUntil(birthday, today time.Time, policy LeapDayPolicy) int {
	next := NextBirthday(birthday, today, policy)
	return int(next.Sub(dateOf(today)).Hours()) / hoursPerDay
}
