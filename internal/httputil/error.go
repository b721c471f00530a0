package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/envelope-zero/savings-goals/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Message string `json:"message" example:"the target amount must be larger than zero"`
}

// New writes an HTTPError with the status.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Message: msg,
	})
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	var validationError models.ValidationError
	var nullFieldError NullFieldError
	var unmarshalTypeError *json.UnmarshalTypeError
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &validationError),
		errors.As(err, &nullFieldError),
		errors.As(err, &unmarshalTypeError),
		errors.As(err, &validationErrors),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrRequestBodyEmpty),
		errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler writes the error response for err.
//
// Server errors are logged with the request ID, the response only
// contains a general message.
func ErrorHandler(c *gin.Context, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		New(c, status, models.ErrGeneral.Error())
		return
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		texts := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			texts = append(texts, ValidationErrorToText(e))
		}

		New(c, status, strings.Join(texts, ", "))
		return
	}

	New(c, status, err.Error())
}

// ValidationErrorToText converts a validator error into a human readable message.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
