package middleware

import (
	"net/http"

	"filevault/common"
	"filevault/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	txKey      = "tx"
	payloadKey = "payload"
)

// Transaction gives every request one unit of work: a transaction begun
// before the handler runs, rolled back if the handler reported an error,
// committed otherwise. The success payload is serialized only after the
// commit went through, so a commit failure still yields an error response.
func Transaction() gin.HandlerFunc {
	return func(c *gin.Context) {
		tx := model.DB.Begin()
		if tx.Error != nil {
			common.AbortError(c, tx.Error)
			return
		}
		c.Set(txKey, tx)

		// A handler panic unwinds past the code below; roll back here so
		// the transaction never outlives the request. The recovery
		// middleware outside still writes the 500 body.
		finished := false
		defer func() {
			if !finished {
				tx.Rollback()
			}
		}()

		c.Next()
		finished = true

		if len(c.Errors) > 0 {
			tx.Rollback()
			return
		}
		if err := tx.Commit().Error; err != nil {
			_ = c.Error(err)
			return
		}
		if payload, ok := c.Get(payloadKey); ok {
			c.JSON(http.StatusOK, payload)
		}
	}
}

// Tx returns the request's transaction. Panics when called outside the
// Transaction middleware.
func Tx(c *gin.Context) *gorm.DB {
	return c.MustGet(txKey).(*gorm.DB)
}

// Respond stages the success payload; the Transaction middleware writes
// it after committing.
func Respond(c *gin.Context, payload any) {
	c.Set(payloadKey, payload)
}
