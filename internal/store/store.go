// Package store provides persistence for creators, profiles and events.
// Lookups that miss return ErrNotFound so callers can tell an absent record
// from an infrastructure failure.
package store

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when an insert violates the unique
	// constraint on the creator email column.
	ErrDuplicateEmail = errors.New("email already registered")
)
