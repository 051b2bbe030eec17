package common

import (
	"github.com/gin-gonic/gin"
)

// AbortError attaches err to the context and stops the handler chain.
// The outermost error middleware turns it into the wire format, so
// handlers never write error bodies themselves.
func AbortError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
