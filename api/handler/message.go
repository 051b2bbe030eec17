package handler

import (
	"strconv"

	"filevault/api/middleware"
	"filevault/common"
	apperrors "filevault/common/errors"
	"filevault/service"

	"github.com/gin-gonic/gin"
)

type postMessageRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// PostMessage accepts a client message, subject to the per-phone
// sliding-window admission check. Runs inside the request transaction.
func PostMessage(c *gin.Context) {
	var req postMessageRequest
	if err := bindJSON(c, &req, apperrors.ErrInvalidRequest); err != nil {
		common.AbortError(c, err)
		return
	}

	message, err := service.CreateMessage(middleware.Tx(c), req.Phone, req.Message)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	middleware.Respond(c, message)
}

// optionalIntQuery parses an optional integer query parameter; a present
// but non-integer or non-positive value is a validation error. A
// negative count would otherwise disable the page cap in the query
// builder.
func optionalIntQuery(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return nil, apperrors.New(apperrors.ErrInvalidRequest,
			"Invalid request").With("property", name)
	}
	return &value, nil
}

// ListMessages returns one page plus the all-time total.
func ListMessages(c *gin.Context) {
	afterID, err := optionalIntQuery(c, "afterId")
	if err != nil {
		common.AbortError(c, err)
		return
	}
	countParam, err := optionalIntQuery(c, "count")
	if err != nil {
		common.AbortError(c, err)
		return
	}
	var count *int
	if countParam != nil {
		value := int(*countParam)
		count = &value
	}

	list, err := service.ListMessages(middleware.Tx(c), afterID, count)
	if err != nil {
		common.AbortError(c, err)
		return
	}
	middleware.Respond(c, gin.H{
		"total":    list.Total,
		"messages": list.Messages,
	})
}
