package errors

import (
	"errors"
	"maps"
)

// Wrap wraps err as an *Error. Path, line and a copy of the context from a
// wrapped *Error are kept so the outermost message still points at the
// failing input.
func Wrap(err error, errType ErrorType, code, message string) *Error {
	if err == nil {
		return nil
	}

	var inner *Error
	if errors.As(err, &inner) {
		return &Error{
			Type:    errType,
			Code:    code,
			Message: message,
			Cause:   err,
			Context: maps.Clone(inner.Context),
			Path:    inner.Path,
			Line:    inner.Line,
		}
	}

	return &Error{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapIO wraps err as an I/O error about path.
func WrapIO(err error, code, path string) *Error {
	wrapped := Wrap(err, ErrorTypeIO, code, "i/o failure")
	if wrapped != nil {
		wrapped.Path = path
	}
	return wrapped
}

// WrapConfig wraps err as a configuration error.
func WrapConfig(err error, code, message string) *Error {
	return Wrap(err, ErrorTypeConfig, code, message)
}
