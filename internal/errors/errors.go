// Package errors holds the small set of error helpers used across the module.
package errors

import (
	stderrors "errors"
	"fmt"
)

// New returns an error with the given message.
func New(msg string) error {
	return stderrors.New(msg)
}

// Errorf returns an error with a formatted message. The %w verb is supported.
func Errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Join combines errors into one. Nil errors are discarded.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap returns an error with the given message and wraps the original error.
//
// Returns nil if the original error is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf returns an error with a formatted message and wraps the original error.
//
// Returns nil if the original error is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// MultiError collects errors from a series of independent steps.
type MultiError []error

// Append adds err to the collection if it is not nil.
func (e MultiError) Append(err error) MultiError {
	if err == nil {
		return e
	}
	return append(e, err)
}

// Join combines the collected errors. Returns nil if there are none.
func (e MultiError) Join() error {
	if len(e) == 0 {
		return nil
	}
	return stderrors.Join(e...)
}

// Wrap joins the collected errors and wraps them with a message.
//
// Returns nil if there are no errors.
func (e MultiError) Wrap(msg string) error {
	return Wrap(e.Join(), msg)
}
