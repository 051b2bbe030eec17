package handler

import (
	"errors"
	"fmt"

	apperrors "filevault/common/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes and validates the request body. Failures come back as
// a domain error under the given code, naming the offending property when
// the validator can tell; they never escalate to a 500.
func bindJSON(c *gin.Context, obj any, code string) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		property := validationErrors[0].Field()
		return apperrors.New(code,
			fmt.Sprintf("Property %s is missing in the request body.", property)).With("property", property)
	}
	return apperrors.New(code, "Malformed request body.")
}

// Hello is the liveness endpoint both services expose.
func Hello(c *gin.Context) {
	c.String(200, "Hello, world!")
}
