package runtime

import (
	"errors"
	"fmt"
)

// ErrorKind names one of the Python exception classes the runtime can raise.
// The taxonomy is closed; emitted programs dispatch on the kind to recover
// the way Python code would with an except clause.
type ErrorKind string

const (
	TypeError           ErrorKind = "TypeError"
	IndexError          ErrorKind = "IndexError"
	NotImplementedError ErrorKind = "NotImplementedError"
)

// Error is a runtime failure carrying its kind and a free-text message. It
// renders as "<Kind>: <message>", which is also the diagnostic format the
// process boundary prints to standard error.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// NewError builds a runtime error of the given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf builds a runtime error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) a runtime Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var rerr *Error
	return errors.As(err, &rerr) && rerr.Kind == kind
}
