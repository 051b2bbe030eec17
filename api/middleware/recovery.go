package middleware

import (
	"net/http"

	apperrors "filevault/common/errors"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the standard 500 error body
// instead of gin's bare empty response. codeKey matches the service's
// error key. The panic and stack still go to gin's error writer.
func Recovery(codeKey string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			codeKey:   apperrors.ErrInternalError,
			"message": "Internal server error",
		})
	})
}
