package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindBadRequest
	KindUnauthorized
	KindConflict
)

func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is the taxonomy every service reports user-facing failures with.
// Anything that is not an *Error surfaces as a 500.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

func ErrNotFound(message string) error {
	return &Error{Kind: KindNotFound, Code: "not_found", Message: message}
}

func ErrNotFoundf(format string, args ...any) error {
	return ErrNotFound(fmt.Sprintf(format, args...))
}

func ErrBadRequest(code, message string) error {
	return &Error{Kind: KindBadRequest, Code: code, Message: message}
}

func ErrValidation(details any) error {
	return &Error{
		Kind:    KindBadRequest,
		Code:    "invalid_request",
		Message: "Invalid request data.",
		Details: details,
	}
}

func ErrUnauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Code: "unauthorized", Message: message}
}

func ErrConflict(message string, details any) error {
	return &Error{Kind: KindConflict, Code: "conflict", Message: message, Details: details}
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
