package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource does not exist
	EINVALID  int = 123 // validation of a configuration failed
	EIO       int = 124 // resource exists but cannot be read or written
	EINTERNAL int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EIO:
		return "i/o error"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's default text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks Code and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// --- Taxonomy --------------------------------------------------------------

// ConfigError creates an error for a font configuration which is
// syntactically broken or violates an invariant. Config errors abort a run.
func ConfigError(format string, v ...interface{}) error {
	return Error(EINVALID, format, v...)
}

// ResourceError wraps an error occurring while accessing a file: a config
// file, a source font or the output artifact. Code should be either EMISSING
// or EIO.
func ResourceError(err error, code int, format string, v ...interface{}) error {
	return WrapError(err, code, format, v...)
}

// IsConfigError is true if err carries code EINVALID.
func IsConfigError(err error) bool {
	return err != nil && Code(err) == EINVALID
}

// IsResourceError is true if err carries code EMISSING or EIO.
func IsResourceError(err error) bool {
	c := Code(err)
	return c == EMISSING || c == EIO
}

// UserError reports err to the operator on stderr.
func UserError(err error) {
	ReportError(os.Stderr, err)
}

// ReportError prints err for the operator to w, as a single line.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	printer := pterm.Error.WithWriter(w)
	if e := AppError(nil); errors.As(err, &e) {
		printer.Printfln("[%d] %s", e.ErrorCode(), e.UserMessage())
		return
	}
	printer.Printfln("%s", err.Error())
}
