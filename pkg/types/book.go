package types

import "iter"

// Book is the contacts collection: records keyed by exact name, iterated in
// the order names were first added. It is not safe for concurrent use.
type Book struct {
	records map[string]*Record
	order   []string
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. A record with the same name is replaced
// and the name keeps its original position in iteration order.
// Returns ErrInvalidRecord if r is nil.
func (b *Book) AddRecord(r *Record) error {
	if r == nil {
		return ErrInvalidRecord
	}
	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
	return nil
}

// Find returns the record stored under name. Matching is exact and
// case-sensitive. Returns ErrNotFound if no record has that name.
func (b *Book) Find(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// All returns the records in insertion order. Each call returns a new
// sequence that starts from the first record.
func (b *Book) All() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, name := range b.order {
			if !yield(b.records[name]) {
				return
			}
		}
	}
}
