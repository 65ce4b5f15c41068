// Package apperrors provides the tagged error type used across the permit pipeline
package apperrors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// Code classifies a pipeline failure. Values are stable; add sparingly
type Code uint16

const (
	// CodeUnknown is for unclassified errors
	CodeUnknown Code = iota

	// CodeValidation is for malformed caller input
	CodeValidation

	// CodeNotFound is for a commit or repository missing upstream
	CodeNotFound

	// CodeUpstream is for code-hosting failures (transport, non-success status, bad body)
	CodeUpstream

	// CodeConfiguration is for a missing or unusable signing key
	CodeConfiguration

	// CodeParse is for malformed model output. Recovered inside the scorer
	CodeParse
)

// String returns a stable label for logs
func (c Code) String() string {
	switch c {
	case CodeValidation:
		return "validation"
	case CodeNotFound:
		return "not_found"
	case CodeUpstream:
		return "upstream"
	case CodeConfiguration:
		return "configuration"
	case CodeParse:
		return "parse"
	default:
		return "unknown"
	}
}

// HTTPStatusCode turns a Code into an http status code.
// Every failure stays in the client-error class: a missing commit is 404,
// everything else is 400 so upstream and configuration failures look alike on the wire.
func HTTPStatusCode(c Code) int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// Error is the tagged error carried through the pipeline.
// msg is caller facing; op names the failing stage; orig is the wrapped cause
type Error struct {
	orig error
	msg  string
	code Code
	op   string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() Code { return e.code }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Message returns the caller-facing message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts a Code from any error, defaulting to Unknown
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return CodeUnknown
}

// Is reports whether err carries the given code
func Is(err error, code Code) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return HTTPStatusCode(CodeOf(err))
}

// Detail returns the text placed in an error response body.
// Tagged errors expose only their message; foreign errors their full text.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.msg
	}
	return err.Error()
}

// WithOp attaches an operation label (copy-on-write). Foreign errors are returned unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// New returns a new *Error with the given code and message
func New(code Code, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code Code, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code Code, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code Code, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(CodeNotFound, format, a...) }

// Upstreamf returns an upstream error
func Upstreamf(format string, a ...any) error { return Newf(CodeUpstream, format, a...) }

// Configurationf returns a configuration error
func Configurationf(format string, a ...any) error { return Newf(CodeConfiguration, format, a...) }

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(CodeValidation, format, a...) }

// Parsef returns a parse error
func Parsef(format string, a ...any) error { return Newf(CodeParse, format, a...) }
