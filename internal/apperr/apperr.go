// Package apperr carries the rejected-request taxonomy shared by the service
// and transport layers. Every failure is a status class plus a message the
// client can show verbatim; nothing here is process-fatal.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the class of a rejected request.
type Code string

const (
	NotFound        Code = "not_found"        // unknown room
	Forbidden       Code = "forbidden"        // not a member, or host-only action
	InvalidState    Code = "invalid_state"    // wrong room status, phase, or turn
	InvalidArgument Code = "invalid_argument" // bad territory, count, or dice
	Capacity        Code = "capacity"         // room full, or code space exhausted
)

// Error is a rejected request. The zero value is not meaningful; use New.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds an Error with the given class and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// HTTPStatus maps an error to a response status. Room-code exhaustion is the
// one Capacity case that is an operational alarm rather than a user mistake;
// callers flag it via ExhaustedCodes.
func HTTPStatus(err error) int {
	if errors.Is(err, ExhaustedCodes) {
		return http.StatusInternalServerError
	}
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case InvalidState, InvalidArgument, Capacity:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ExhaustedCodes is returned when room-code generation keeps colliding. It
// maps to a 500 because retrying the request will not help.
var ExhaustedCodes = &Error{Code: Capacity, Message: "Unable to generate room code"}

// IsCode reports whether err is an Error of the given class.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
