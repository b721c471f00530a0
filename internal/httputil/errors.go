package httputil

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidID        = errors.New("the specified goal ID is not a valid integer")
)

// NullFieldError is returned when a field in the request body is
// explicitly set to null. Its value is the JSON name of the field.
type NullFieldError string

func (e NullFieldError) Error() string {
	return fmt.Sprintf("%s must not be null", string(e))
}
