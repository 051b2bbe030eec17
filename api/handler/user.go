package handler

import (
	"net/http"

	"filevault/api/middleware"
	"filevault/common"
	apperrors "filevault/common/errors"
	"filevault/model"
	"filevault/service"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a user and opens their first session.
func Signup(c *gin.Context) {
	var req credentialsRequest
	if err := bindJSON(c, &req, apperrors.ErrBodyPropertyMissing); err != nil {
		common.AbortError(c, err)
		return
	}

	user, err := service.CreateUser(model.DB, req.UserID, req.Password)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	session, err := service.CreateSession(model.DB, user)
	if err != nil {
		common.AbortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":       user.ID,
		"refreshToken": user.RefreshToken,
		"bearerToken":  session.BearerToken,
	})
}

// Signin opens a new session for an existing user. Unknown user and wrong
// password produce the identical error so callers cannot enumerate
// accounts.
func Signin(c *gin.Context) {
	var req credentialsRequest
	if err := bindJSON(c, &req, apperrors.ErrBodyPropertyMissing); err != nil {
		common.AbortError(c, err)
		return
	}

	user, err := service.GetUserByID(model.DB, req.UserID)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	if user == nil || !common.ValidatePasswordAndHash(req.Password, user.PasswordHash) {
		common.AbortError(c, apperrors.New(apperrors.ErrInvalidCredentials,
			"Invalid credentials (user ID or password)."))
		return
	}

	session, err := service.CreateSession(model.DB, user)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bearerToken": session.BearerToken})
}

// RefreshSession mints a new bearer token from the long-lived refresh
// token. The refresh token itself is never rotated.
func RefreshSession(c *gin.Context) {
	refreshToken := c.GetHeader("refresh-token")
	if refreshToken == "" {
		common.AbortError(c, apperrors.New(apperrors.ErrNoRefreshToken, "No refresh token."))
		return
	}

	user, err := service.GetUserByRefreshToken(model.DB, refreshToken)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	if user == nil {
		common.AbortError(c, apperrors.New(apperrors.ErrInvalidRefreshToken,
			"Invalid refresh token.").With("refreshToken", refreshToken))
		return
	}

	session, err := service.CreateSession(model.DB, user)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bearerToken": session.BearerToken})
}

// Logout revokes the current session. The bearer token keeps its row; it
// just stops validating.
func Logout(c *gin.Context) {
	bearerToken := c.GetString(middleware.ContextBearerToken)
	session, err := service.GetSessionByBearerToken(model.DB, bearerToken)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	if session == nil {
		// The auth gate just resolved this token; a missing row here is
		// an internal inconsistency, not a client error.
		common.AbortError(c, apperrors.New(apperrors.ErrInternalError, "Internal server error"))
		return
	}
	if err := service.RevokeSession(model.DB, session); err != nil {
		common.AbortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// Info returns the caller identity attached by the auth gate.
func Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"userId": c.GetString(middleware.ContextUserID)})
}
