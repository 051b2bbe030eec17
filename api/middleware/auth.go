package middleware

import (
	"filevault/common"
	apperrors "filevault/common/errors"
	"filevault/model"
	"filevault/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by BearerAuth for downstream handlers.
const (
	ContextUserID      = "userId"
	ContextBearerToken = "bearerToken"
)

// BearerAuth resolves the bearer-token header to a caller identity. A
// single failed check rejects the whole request; all rejections map to
// 401 through the error code table.
func BearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearerToken := c.GetHeader("bearer-token")
		if bearerToken == "" {
			common.AbortError(c, apperrors.New(apperrors.ErrNoBearerToken, "No bearer token."))
			return
		}

		session, err := service.GetSessionByBearerToken(model.DB, bearerToken)
		if err != nil {
			common.AbortError(c, err)
			return
		}
		if session == nil {
			common.AbortError(c, apperrors.New(apperrors.ErrInvalidBearerToken,
				"No session with provided bearer token exists.").With("bearerToken", bearerToken))
			return
		}
		if service.IsSessionExpired(session) {
			common.AbortError(c, apperrors.New(apperrors.ErrSessionExpired,
				"Session expired.").With("bearerToken", bearerToken))
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextBearerToken, session.BearerToken)
		c.Next()
	}
}
