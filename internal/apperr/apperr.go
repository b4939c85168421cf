// Package apperr defines the error taxonomy shared by every engine operation.
// The API layer maps each kind to a transport status; the engines only ever
// produce a kind plus a human-readable message.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidArgument
	KindConflict
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(msg string) error        { return New(KindNotFound, msg) }
func InvalidArgument(msg string) error { return New(KindInvalidArgument, msg) }
func Conflict(msg string) error        { return New(KindConflict, msg) }
func Forbidden(msg string) error       { return New(KindForbidden, msg) }

// KindOf returns the kind carried by err, or KindUnknown for errors outside
// the taxonomy (wrapped errors are unwrapped).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
