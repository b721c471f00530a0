package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// UseJSONFieldNames configures gin's validator to report fields by their
// JSON name instead of the Go struct field name.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(jsonName)
}

// jsonName returns the name of the field in JSON.
func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

// ParseID parses the path parameter as an integer ID.
//
// Integers that cannot be the ID of a goal, e.g. negative or too large
// ones, are returned as 0. No goal has that ID.
func ParseID(c *gin.Context, param string) (uint64, error) {
	value := c.Param(param)

	id, err := strconv.ParseUint(value, 10, 64)
	if err == nil {
		return id, nil
	}

	signed, err := strconv.ParseInt(value, 10, 64)
	if err == nil {
		if signed > 0 {
			return uint64(signed), nil
		}
		return 0, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		return 0, nil
	}

	return 0, ErrInvalidID
}

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return err
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// CheckBodyFields verifies that none of the fields of resource are set
// to null in the request body. The body must be a JSON object.
//
// This function reads and copies the request body, it must always
// be called before any of gin's c.*Bind methods.
func CheckBodyFields(c *gin.Context, resource any) error {
	// Copy the body to be able to use it multiple times
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return ErrRequestBodyEmpty
	}

	// Parse the body into a map to have all fields available
	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil || mapBody == nil {
		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err)
		return ErrInvalidBody
	}

	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		param := jsonName(val.Type().Field(i))

		if value, ok := mapBody[param]; ok && value == nil {
			return NullFieldError(param)
		}
	}

	return nil
}

// ContextURL is the key of the external API base URL in the gin context.
const ContextURL = "savings-goals-url"

// URLMiddleware sets the external API base URL in the context.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextURL, url.String())
		c.Next()
	}
}
