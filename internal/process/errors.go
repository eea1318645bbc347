package process

import (
	"errors"
	"fmt"
)

// ValidationError reports invalid user input: a malformed expression, an
// unknown column, an unsupported function, or a dataset the requested
// operation cannot be applied to.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
