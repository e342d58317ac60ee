package blambda

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Code is an error code that mirrors the http status codes. Handlers return errors carrying a code to have them
// rendered as a response with that status instead of a generic 500.
type Code int

const (
	CodeUnknown             Code = 0
	CodeBadRequest          Code = http.StatusBadRequest          // RFC 9110, 15.5.1
	CodeUnauthorized        Code = http.StatusUnauthorized        // RFC 9110, 15.5.2
	CodeForbidden           Code = http.StatusForbidden           // RFC 9110, 15.5.4
	CodeNotFound            Code = http.StatusNotFound            // RFC 9110, 15.5.5
	CodeConflict            Code = http.StatusConflict            // RFC 9110, 15.5.10
	CodeUnprocessableEntity Code = http.StatusUnprocessableEntity // RFC 9110, 15.5.21
	CodeTooManyRequests     Code = http.StatusTooManyRequests     // RFC 6585, 4

	CodeInternalServerError Code = http.StatusInternalServerError // RFC 9110, 15.6.1
	CodeBadGateway          Code = http.StatusBadGateway          // RFC 9110, 15.6.3
	CodeServiceUnavailable  Code = http.StatusServiceUnavailable  // RFC 9110, 15.6.4
	CodeGatewayTimeout      Code = http.StatusGatewayTimeout      // RFC 9110, 15.6.5
)

// Error pairs an underlying error with a status code.
type Error struct {
	code Code
	err  error
}

// NewError inits a new error given the error code.
func NewError(c Code, underlying error) *Error {
	return &Error{c, underlying}
}

func (e *Error) Code() Code    { return e.code }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Error() string {
	status := http.StatusText(int(e.Code()))
	if status == "" {
		status = "Unknown"
	}

	if e.err == nil {
		return status
	}

	return fmt.Sprintf("%s: %s", status, e.err.Error())
}

// CodeOf returns the error's status code if it is or wraps an [*Error] and [CodeUnknown] otherwise.
func CodeOf(err error) Code {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Code()
	}

	return CodeUnknown
}

// ErrorResponse renders err as a {"message": ...} response. Client errors (4xx) expose the underlying message,
// server errors only expose the status text. Errors without a code become a 500.
func ErrorResponse(err error, headers Headers) Response {
	code := CodeOf(err)
	switch {
	case code >= 400 && code < 500:
		var cerr *Error
		errors.As(err, &cerr)

		var msg string
		if cerr.err != nil {
			msg = cerr.err.Error()
		}

		return messageResponse(int(code), msg, headers)
	case code >= 500 && code < 600:
		return messageResponse(int(code), "", headers)
	default:
		return InternalServerError("", headers)
	}
}
