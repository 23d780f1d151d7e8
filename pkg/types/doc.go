// Package types defines the contact book entity types (Field, Record, Book),
// the runtime Config, and the standard error values shared by the service
// and CLI layers.
//
// The package performs no I/O. Callers construct a Book, add Records to it,
// and translate the returned errors into user-facing text themselves.
package types
