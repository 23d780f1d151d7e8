// Package contacts implements the contact book operations used by the shell:
// add a contact, change its phone, look up its phone or days to birthday,
// and list every contact.
package contacts

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Result messages returned by the service operations.
const (
	MsgContactAdded   = "Contact added successfully."
	MsgPhoneUpdated   = "Phone number updated successfully."
	MsgNoPhone        = "No phone set for this contact."
	MsgNoBirthday     = "No birthday set for this contact."
	MsgNoContacts     = "No contacts found."
	msgDaysToBirthday = "Days to next birthday: %d"
)

// Service runs contact operations against a Book it owns.
type Service struct {
	book    *types.Book
	now     func() time.Time
	leapDay types.LeapDayPolicy
	log     *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the source of "today". Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLeapDayPolicy sets how Feb 29 birthdays are counted in non-leap years.
func WithLeapDayPolicy(p types.LeapDayPolicy) Option {
	return func(s *Service) { s.leapDay = p }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService returns a Service over book. A nil book is replaced with an
// empty one.
func NewService(book *types.Book, opts ...Option) *Service {
	if book == nil {
		book = types.NewBook()
	}
	s := &Service{
		book:    book,
		now:     time.Now,
		leapDay: types.DefaultLeapDayPolicy,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Book returns the underlying contacts collection.
func (s *Service) Book() *types.Book {
	return s.book
}

// AddContact stores a new record for name with the given phone and optional
// birthday, replacing any record with the same name. Nothing is stored when
// a value is rejected.
func (s *Service) AddContact(name, phone string, birthday *time.Time) (string, error) {
	r, err := types.NewRecord(name, birthday)
	if err != nil {
		return "", fmt.Errorf("add contact: %w", err)
	}
	if err := r.AddPhone(phone); err != nil {
		return "", fmt.Errorf("add contact: %w", err)
	}

	_, findErr := s.book.Find(name)
	replaced := findErr == nil
	if err := s.book.AddRecord(r); err != nil {
		return "", fmt.Errorf("add contact: %w", err)
	}

	s.log.Debug("contact added",
		zap.String("name", name),
		zap.String("record_id", r.ID),
		zap.Bool("replaced", replaced),
		zap.Bool("birthday", birthday != nil),
	)
	return MsgContactAdded, nil
}

// ChangePhone replaces the phone of an existing contact.
func (s *Service) ChangePhone(name, phone string) (string, error) {
	r, err := s.book.Find(name)
	if err != nil {
		return "", fmt.Errorf("change phone %q: %w", name, err)
	}
	if err := r.SetPhone(phone); err != nil {
		return "", fmt.Errorf("change phone %q: %w", name, err)
	}
	s.log.Debug("phone changed", zap.String("name", name), zap.String("record_id", r.ID))
	return MsgPhoneUpdated, nil
}

// GetPhone returns the phone of an existing contact, or MsgNoPhone when the
// contact has none.
func (s *Service) GetPhone(name string) (string, error) {
	r, err := s.book.Find(name)
	if err != nil {
		return "", fmt.Errorf("get phone %q: %w", name, err)
	}
	phone, ok := r.Phone()
	if !ok {
		return MsgNoPhone, nil
	}
	return phone, nil
}

// GetDaysToBirthday reports the days until the contact's next birthday,
// counted from the service clock's current date.
func (s *Service) GetDaysToBirthday(name string) (string, error) {
	r, err := s.book.Find(name)
	if err != nil {
		return "", fmt.Errorf("get birthday %q: %w", name, err)
	}
	days, ok := r.DaysToBirthday(s.now(), s.leapDay)
	if !ok {
		return MsgNoBirthday, nil
	}
	s.log.Debug("days to birthday", zap.String("name", name), zap.Int("days", days))
	return fmt.Sprintf(msgDaysToBirthday, days), nil
}

// ListContacts returns one "name: phone" line per contact in insertion
// order, or MsgNoContacts when the book is empty. A contact without a phone
// is listed with an empty phone.
func (s *Service) ListContacts() string {
	if s.book.Len() == 0 {
		return MsgNoContacts
	}
	lines := make([]string, 0, s.book.Len())
	for r := range s.book.All() {
		phone, _ := r.Phone()
		lines = append(lines, r.Name()+": "+phone)
	}
	return strings.Join(lines, "\n")
}
