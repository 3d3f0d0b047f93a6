package configfile

import (
	stderrors "errors"

	"github.com/conneroisu/localvec/internal/errors"
	"github.com/conneroisu/localvec/internal/validation"
)

// Validate reports every problem with c. The returned error joins one
// validation error per offending field.
func (c *ServiceConfig) Validate() error {
	var problems []error

	check := func(field string, err error) {
		if err != nil {
			problems = append(problems, errors.NewValidationError(errors.ErrCodeValidationFailed,
				field+": "+err.Error()).WithContext("field", field))
		}
	}

	check("port", validation.ValidatePort(c.Port))
	check("base_url", validation.ValidateURL(c.BaseURL, "http", "https"))
	check("s3_path", validation.ValidateURL(c.S3Path, "s3"))
	check("database_url", validation.ValidateDSN(c.DatabaseURL))

	return stderrors.Join(problems...)
}
