package cmd

import (
	"github.com/conneroisu/localvec/internal/errors"
)

// Process exit statuses, chosen by the type of the first *errors.Error in
// the returned chain.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitConfig     = 3
	ExitIO         = 4
	ExitInternal   = 70
)

// ExitCode maps the error returned by Execute to a process exit status.
// Errors without a type, such as cobra usage errors, exit with ExitFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsType(err, errors.ErrorTypeValidation):
		return ExitValidation
	case errors.IsType(err, errors.ErrorTypeConfig):
		return ExitConfig
	case errors.IsType(err, errors.ErrorTypeIO):
		return ExitIO
	case errors.IsType(err, errors.ErrorTypeInternal):
		return ExitInternal
	default:
		return ExitFailure
	}
}
