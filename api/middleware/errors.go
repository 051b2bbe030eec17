package middleware

import (
	"errors"
	"net/http"

	"filevault/common"
	apperrors "filevault/common/errors"

	"github.com/gin-gonic/gin"
)

// ErrorHandler formats the first error attached to the context. Domain
// errors are surfaced verbatim with their code and params; anything else
// becomes an opaque 500. codeKey is the JSON key carrying the error code
// ("error" for the file service, "errorCode" for the message service).
//
// Must be registered after any middleware that wraps the response writer
// (gzip): the error body is written while unwinding, and the wrapping
// writer must still be open at that point.
func ErrorHandler(codeKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			body := gin.H{codeKey: appErr.Code, "message": appErr.Message}
			for key, value := range appErr.Params {
				body[key] = value
			}
			c.JSON(apperrors.HTTPStatus(appErr.Code), body)
			return
		}

		common.SysError(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			codeKey:   apperrors.ErrInternalError,
			"message": "Internal server error",
		})
	}
}
