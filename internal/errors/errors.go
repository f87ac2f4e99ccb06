// Package errors is the single errors import of the planner. Inspection goes
// through the standard library and annotation through pkg/errors, so wrapped
// storage and token failures keep their stack while errors.Is still sees the
// domain sentinels joined onto them.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// Join attaches a domain sentinel to the failure that caused it.
func Join(errs ...error) error { return stderrors.Join(errs...) }

// Wrap annotates err with message and a stack trace. It returns nil when err is nil.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

// Errorf builds a new error with a stack trace. Unlike fmt.Errorf it does not support %w.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }
