package route

import (
	"filevault/api/handler"
	"filevault/api/middleware"
	"filevault/common"

	"github.com/gin-gonic/gin"
)

// SetMessageRouter wires the message service routes. Every /message
// route runs inside a per-request transaction.
func SetMessageRouter(router *gin.Engine) {
	router.Use(middleware.CORS())
	router.Use(middleware.GlobalAPIRateLimit())
	if common.EnableGzip {
		router.Use(middleware.GzipEncodeMiddleware())
	}
	router.Use(middleware.Recovery("errorCode"))
	router.Use(middleware.ErrorHandler("errorCode"))

	router.GET("/hello", handler.Hello)

	messageRoutes := router.Group("/message", middleware.Transaction())
	{
		messageRoutes.POST("/post", handler.PostMessage)
		messageRoutes.GET("/list", handler.ListMessages)
	}
}
