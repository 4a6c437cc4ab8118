package domain

import (
	"errors"
	"fmt"
)

// Business-invariant violations. These are always recoverable: the
// requested action is refused and the session continues.
var (
	ErrAlreadyRented = errors.New("tool already has an open rental")
	ErrNotRented     = errors.New("tool has no open rental")
)

// ValidationError reports a missing or invalid input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateError reports a uniqueness violation detected before insert.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// InUseError refuses a delete while a dependent open rental exists.
type InUseError struct {
	Entity    string // "tool" or "friend"
	Dependent string // the relationship blocking the delete
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s cannot be deleted: %s", e.Entity, e.Dependent)
}

// NotFoundError is the use-case face of a repository "absent" result.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// DataAccessError wraps a driver-level failure. Repositories never leak
// store-specific error shapes; every low-level failure crosses the
// repository boundary wrapped in one of these.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failure in %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
