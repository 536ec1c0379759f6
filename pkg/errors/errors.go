// Package errors provides coded errors for buttonstrip.
//
// Geometry, layout and state resolution never fail: they degrade to empty or
// clamped output. Errors exist at the edges, where strip and settings files
// are decoded, render requests are validated and artifacts are written.
// Every [Error] carries a [Code] that the preview server maps to an HTTP
// status and the CLI prints as a prefix:
//
//	err := errors.New(errors.ErrCodeInvalidSettings, "unknown shape: %s", name)
//	errors.Is(err, errors.ErrCodeInvalidSettings) // true
//	errors.Wrap(errors.ErrCodeInvalidFormat, cause, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidSettings Code = "INVALID_SETTINGS"
	ErrCodeInvalidShape    Code = "INVALID_SHAPE"
	ErrCodeInvalidLayout   Code = "INVALID_LAYOUT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidViewport Code = "INVALID_VIEWPORT"

	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeItemNotFound    Code = "ITEM_NOT_FOUND"
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

var statuses = map[Code]int{
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidFormat:   http.StatusBadRequest,
	ErrCodeInvalidSettings: http.StatusBadRequest,
	ErrCodeInvalidShape:    http.StatusBadRequest,
	ErrCodeInvalidLayout:   http.StatusBadRequest,
	ErrCodeInvalidPath:     http.StatusBadRequest,
	ErrCodeInvalidViewport: http.StatusBadRequest,

	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeFileNotFound:    http.StatusNotFound,
	ErrCodeItemNotFound:    http.StatusNotFound,
	ErrCodeSessionNotFound: http.StatusNotFound,

	ErrCodeUnsupported: http.StatusNotImplemented,
}

// HTTPStatus is the status the preview server answers with for c.
// Unknown codes and ErrCodeInternal are 500.
func (c Code) HTTPStatus() int {
	if s, ok := statuses[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any coded error in err's chain has code, so a
// settings error wrapped by the strip loader still matches
// ErrCodeInvalidSettings.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the outermost code in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage is the message without the code prefix and cause.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps err to a response status by its outermost code.
func HTTPStatus(err error) int {
	return GetCode(err).HTTPStatus()
}
