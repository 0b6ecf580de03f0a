package gutenfreq

import (
	"errors"
	"fmt"
)

// Application error codes. These map failures onto the presentation tiers
// the CLI distinguishes: a normal negative result (ENOTFOUND), a network
// failure (ETRANSPORT), a persistence failure (ESTORE), bad input
// (EINVALID), and everything else (EINTERNAL).
const (
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	ETRANSPORT = "transport"
	ESTORE     = "store"
	EINTERNAL  = "internal"
)

// Error represents an application error. Application errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("gutenfreq error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code. Non
// application errors always return EINTERNAL. A nil error returns an empty
// string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message. Non
// application errors always return "Internal error.". A nil error returns an
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an *Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
