package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the failure class of an Error. Every operation in the
// backend fails with exactly one of these; nothing escapes unclassified.
type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeAuth         Code = "AUTH_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeNotFound     Code = "NOT_FOUND"
	CodeAPI          Code = "API_ERROR"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// Error is the single error type surfaced by usecases and the Figma client.
// UpstreamStatus is only set for API_ERROR and carries the provider's HTTP
// status so handlers can derive the response status from it.
type Error struct {
	Code           Code   `json:"code"`
	Message        string `json:"message"`
	Detail         string `json:"detail,omitempty"`
	UpstreamStatus int    `json:"-"`
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func Auth(message string) *Error {
	return &Error{Code: CodeAuth, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// API classifies an upstream provider failure. status is the provider's HTTP
// status (0 when the failure happened before a response was received).
func API(message, detail string, status int) *Error {
	return &Error{Code: CodeAPI, Message: message, Detail: detail, UpstreamStatus: status}
}

func Internal(message string, cause error) *Error {
	e := &Error{Code: CodeInternal, Message: message}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

// From returns err's *Error when it already carries one, and nil otherwise.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Ensure classifies err as INTERNAL_ERROR unless it is already classified.
// Errors are classified once at the point of detection; an already-classified
// error passing through an outer layer must not be re-wrapped.
func Ensure(err error, message string) *Error {
	if e := From(err); e != nil {
		return e
	}
	return Internal(message, err)
}

// HTTPStatus maps an error class onto the response status. API_ERROR derives
// its status from the upstream response: client-side upstream statuses pass
// through, everything else surfaces as 502.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeAuth:
		return http.StatusForbidden
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAPI:
		if e.UpstreamStatus >= 400 && e.UpstreamStatus < 500 {
			return e.UpstreamStatus
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
