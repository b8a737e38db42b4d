package store

import (
	"errors"
	"fmt"
)

// ErrNoMood is the validation failure for saving a draft without a
// selected mood. The collection is left untouched.
var ErrNoMood = errors.New("store: entry has no mood selected")

// ValidationError reports an entry that cannot be persisted as-is.
// It is always recoverable: the caller fixes the draft and retries.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid entry: %v", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// PersistenceError means the in-memory collection was updated but the
// write-through to durable storage failed. The user's entry is not
// lost, but it will not survive the process.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("entry saved in memory only, write failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
