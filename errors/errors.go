// Package errors provides a string based error type allowing the definition of const error sentinels in packages.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeparator is used to separate the message from the cause in the error message.
const ErrSeparator = " -- "

// Error is a string based error type that can be declared const.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Is checks if the target error is equivalent to Error, either exactly or as the prefix of a wrapped message.
func (e Error) Is(target error) bool {
	return e.Error() == target.Error() || strings.HasPrefix(target.Error(), e.Error()+ErrSeparator)
}

// Wrap will add the provided error as a cause for this Error and return the wrapped error.
func (e Error) Wrap(cause error) error {
	return wrappedError{cause: cause, msg: string(e)}
}

// Wrapf wraps a formatted cause, equivalent to e.Wrap(fmt.Errorf(format, args...)).
func (e Error) Wrapf(format string, args ...any) error {
	return wrappedError{cause: fmt.Errorf(format, args...), msg: string(e)}
}

type wrappedError struct {
	cause error
	msg   string
}

func (w wrappedError) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s%s%v", w.msg, ErrSeparator, w.cause)
	}
	return w.msg
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// The below are wrappers as we are stealing the namespace of the errors package.

// Is checks if err is equivalent to target.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns a new error with the specified message.
func New(message string) error {
	return errors.New(message)
}
