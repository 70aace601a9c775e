package fixedmap

import (
	"errors"
	"fmt"
)

// Error codes.  One per failure kind in the container contract.
const (
	// ErrInvalidArgument: construction was handed a key list that
	// filters down to nothing.
	ErrInvalidArgument = "ERR_INVALID_ARGUMENT"
	// ErrKeyNotFound: an operation named a key outside the fixed set.
	ErrKeyNotFound = "ERR_KEY_NOT_FOUND"
)

// Error is the canonical error type for fixedmap operations.
// Callers dispatch on the Code field, or use the Is* predicates below.
type Error struct {
	Code string
	Key  string // offending key, when the failure is key-scoped
	Msg  string
}

func (e *Error) Error() string {
	switch {
	case e.Key != "" && e.Msg != "":
		return fmt.Sprintf("%s: %q: %s", e.Code, e.Key, e.Msg)
	case e.Key != "":
		return fmt.Sprintf("%s: %q", e.Code, e.Key)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

func newErr(code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func newKeyErr(key string) *Error {
	return &Error{Code: ErrKeyNotFound, Key: key, Msg: "key not in fixed set"}
}

// IsKeyNotFound reports whether err, or anything it wraps, is a
// fixedmap Error carrying ErrKeyNotFound.
func IsKeyNotFound(err error) bool { return hasCode(err, ErrKeyNotFound) }

// IsInvalidArgument reports whether err, or anything it wraps, is a
// fixedmap Error carrying ErrInvalidArgument.
func IsInvalidArgument(err error) bool { return hasCode(err, ErrInvalidArgument) }

func hasCode(err error, code string) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Code == code
}
