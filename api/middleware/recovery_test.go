package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"filevault/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryWritesErrorBody(t *testing.T) {
	router := gin.New()
	router.Use(Recovery("error"))
	router.Use(ErrorHandler("error"))
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	req, _ := http.NewRequest("GET", "/boom", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "INTERNAL_ERROR")
	assert.Contains(t, resp.Body.String(), "Internal server error")
}

func TestPanicInsideTransactionRollsBack(t *testing.T) {
	router := gin.New()
	router.Use(Recovery("errorCode"))
	router.Use(ErrorHandler("errorCode"))
	group := router.Group("/", Transaction())
	group.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	req, _ := http.NewRequest("GET", "/boom", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	// The transaction's connection was released: a follow-up query must
	// not block on the single sqlite connection.
	var n int64
	require.NoError(t, model.DB.Model(&model.User{}).Count(&n).Error)
}
