package errors

import (
	"errors"
	"fmt"
)

// Kind identifies which family a scaffolding failure belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTemplate wraps a template lookup, parse, or execution failure.
	KindTemplate
	// KindIO wraps a filesystem or process-spawn failure.
	KindIO
	// KindCustom carries a human-readable message, usually a validation failure.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindTemplate:
		return "template"
	case KindIO:
		return "io"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching by kind.
var (
	ErrTemplate = &Error{Kind: KindTemplate}
	ErrIO       = &Error{Kind: KindIO}
	ErrCustom   = &Error{Kind: KindCustom}
)

// Error is the single error type returned by strategies and the template store.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Kind.String() + " error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// WithDetail attaches a key/value pair for diagnostics.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Template wraps a rendering failure.
func Template(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindTemplate, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// IO wraps a filesystem or spawn failure.
func IO(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// Custom creates a message-only error.
func Custom(message string) *Error {
	return &Error{Kind: KindCustom, Message: message}
}

// Customf creates a message-only error with a formatted message.
func Customf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindCustom, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err's chain holds an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Chain returns the message of err and of each cause, outermost first. Each
// *Error contributes only its own message; the first foreign error ends the
// chain with its full text.
func Chain(err error) []string {
	var out []string
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			out = append(out, err.Error())
			break
		}
		msg := e.Kind.String() + " error"
		if e.Message != "" {
			msg += ": " + e.Message
		}
		out = append(out, msg)
		err = e.Wrapped
	}
	return out
}
