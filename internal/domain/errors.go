package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBooking means no booking has been created yet. It is a normal
	// empty state, not a failure.
	ErrNoBooking = errors.New("no previous booking found")

	// ErrNotCreated means the store accepted the insert but returned no record.
	ErrNotCreated = errors.New("booking was not created")
)

// ValidationError reports a booking payload the user can correct.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking data: %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a failed store operation so callers can tell a broken
// store apart from a bad payload.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
