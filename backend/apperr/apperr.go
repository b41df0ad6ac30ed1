// Package apperr holds the error taxonomy shared by the store, the quiz engine
// and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks failures of the durable store itself. Callers see a
// generic failure; the wrapped detail is for server logs only.
var ErrStoreUnavailable = errors.New("store unavailable")

// ValidationError reports malformed or out-of-range caller input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports an operation that targeted a record that does not exist.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

func NotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// StoreError wraps a driver error with the operation that failed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }

// Store wraps err as a StoreError, or returns nil when err is nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
