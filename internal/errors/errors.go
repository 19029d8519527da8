// Package errors is the one import for error handling. Matching goes
// through the standard library; wrapping records a pkg/errors stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel without a stack.
func New(text string) error { return stderrors.New(text) }

// Is reports whether target is anywhere in err's chain.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As stores the first match of target's type in err's chain.
func As(err error, target any) bool { return stderrors.As(err, target) }

// AsType is As for callers that want the typed value back.
//
//	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok { ... }
func AsType[T error](err error) (T, bool) {
	var target T
	if err == nil {
		return target, false
	}
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap prefixes err with message and records the caller's stack. A nil
// err stays nil.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

// Wrapf is Wrap with a format.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack without changing the message.
func WithStack(err error) error { return pkgerrors.WithStack(err) }

// Errorf builds a new error with a stack.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

// Cause strips every Wrap layer and returns the innermost error.
//
//nolint:wrapcheck // passthrough
func Cause(err error) error { return pkgerrors.Cause(err) }
