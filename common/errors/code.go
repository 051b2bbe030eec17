package errors

import "net/http"

// 通用错误
const (
	ErrInternalError = "INTERNAL_ERROR"
)

// 校验错误
const (
	ErrBodyPropertyMissing = "BODY_PROPERTY_MISSING"
	ErrInvalidRequest      = "INVALID_REQUEST"
)

// 认证错误
const (
	ErrNoBearerToken       = "NO_BEARER_TOKEN"
	ErrNoRefreshToken      = "NO_REFRESH_TOKEN"
	ErrInvalidBearerToken  = "INVALID_BEARER_TOKEN"
	ErrInvalidRefreshToken = "INVALID_REFRESH_TOKEN"
	ErrSessionExpired      = "SESSION_EXPIRED"
	ErrUserIdExists        = "USER_ID_EXISTS"
	ErrInvalidCredentials  = "INVALID_CREDENTIALS"
)

// 文件错误
const (
	ErrNoFileAttached = "NO_FILE_ATTACHED"
	ErrInvalidFileId  = "INVALID_FILE_ID"
)

// 消息错误
const (
	ErrTooManyMessages = "TOO_MANY_MESSAGES"
)

var httpCodes = map[string]int{
	ErrNoBearerToken:       http.StatusUnauthorized,
	ErrNoRefreshToken:      http.StatusUnauthorized,
	ErrInvalidBearerToken:  http.StatusUnauthorized,
	ErrInvalidRefreshToken: http.StatusUnauthorized,
	ErrSessionExpired:      http.StatusUnauthorized,
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrUserIdExists:        http.StatusUnprocessableEntity,
	ErrTooManyMessages:     http.StatusForbidden,
	ErrInternalError:       http.StatusInternalServerError,
}

// HTTPStatus maps an error code to its HTTP status. Unmapped codes
// default to 400.
func HTTPStatus(code string) int {
	if status, ok := httpCodes[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
