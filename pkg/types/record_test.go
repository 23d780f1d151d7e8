package types

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("name only", func(t *testing.T) {
		r, err := NewRecord("alice", nil)
		require.NoError(t, err)
		assert.Equal(t, "alice", r.Name())

		_, ok := r.Phone()
		assert.False(t, ok, "new record starts with no phone")
		_, ok = r.Birthday()
		assert.False(t, ok)

		id, err := uuid.Parse(r.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
	})

	t.Run("with birthday keeps date only", func(t *testing.T) {
		b := time.Date(1990, time.May, 3, 15, 30, 0, 0, time.FixedZone("X", 3*3600))
		r, err := NewRecord("bob", &b)
		require.NoError(t, err)

		got, ok := r.Birthday()
		require.True(t, ok)
		assert.Equal(t, date(1990, time.May, 3), got)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewRecord("", nil)
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("zero birthday rejected", func(t *testing.T) {
		var zero time.Time
		_, err := NewRecord("carol", &zero)
		assert.ErrorIs(t, err, ErrInvalidBirthday)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, err := NewRecord("a", nil)
		require.NoError(t, err)
		b, err := NewRecord("a", nil)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestRecordPhone(t *testing.T) {
	r, err := NewRecord("alice", nil)
	require.NoError(t, err)

	require.NoError(t, r.AddPhone("12345"))
	require.NoError(t, r.AddPhone("67890"))
	got, ok := r.Phone()
	assert.True(t, ok)
	assert.Equal(t, "67890", got, "adding a phone replaces the previous one")

	assert.ErrorIs(t, r.SetPhone("abc"), ErrInvalidPhone)
	got, _ = r.Phone()
	assert.Equal(t, "67890", got)

	r.RemovePhone("12345")
	_, ok = r.Phone()
	assert.True(t, ok, "removing a non-matching phone is a no-op")

	r.RemovePhone("67890")
	_, ok = r.Phone()
	assert.False(t, ok)
}

func TestRecordEditPhone(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		oldPhone string
		newPhone string
		want     string
		wantErr  error
	}{
		{name: "matching old replaces", current: "111", oldPhone: "111", newPhone: "222", want: "222"},
		{name: "non-matching old is no-op", current: "111", oldPhone: "333", newPhone: "222", want: "111"},
		{name: "invalid new rejected", current: "111", oldPhone: "111", newPhone: "2x2", want: "111", wantErr: ErrInvalidPhone},
		{name: "invalid new rejected without match", current: "111", oldPhone: "999", newPhone: "", want: "111", wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecord("alice", nil)
			require.NoError(t, err)
			require.NoError(t, r.SetPhone(tt.current))

			err = r.EditPhone(tt.oldPhone, tt.newPhone)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			got, _ := r.Phone()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordEditPhoneWithoutPhone(t *testing.T) {
	r, err := NewRecord("alice", nil)
	require.NoError(t, err)

	require.NoError(t, r.EditPhone("111", "222"))
	_, ok := r.Phone()
	assert.False(t, ok)
}

func TestRecordDaysToBirthday(t *testing.T) {
	today := date(2026, time.October, 16)

	r, err := NewRecord("alice", nil)
	require.NoError(t, err)
	_, ok := r.DaysToBirthday(today, LeapDayFeb28)
	assert.False(t, ok, "no birthday is reported as absent")

	require.NoError(t, r.SetBirthday(date(1990, time.October, 20)))
	days, ok := r.DaysToBirthday(today, LeapDayFeb28)
	assert.True(t, ok)
	assert.Equal(t, 4, days)

	r.ClearBirthday()
	_, ok = r.DaysToBirthday(today, LeapDayFeb28)
	assert.False(t, ok)
}
