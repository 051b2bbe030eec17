package route

import (
	"filevault/api/handler"
	"filevault/api/middleware"
	"filevault/common"

	"github.com/gin-gonic/gin"
)

// SetFileRouter wires the file/auth service routes.
func SetFileRouter(router *gin.Engine) {
	router.Use(middleware.CORS())
	router.Use(middleware.GlobalAPIRateLimit())
	if common.EnableGzip {
		router.Use(middleware.GzipEncodeMiddleware())
	}
	router.Use(middleware.Recovery("error"))
	router.Use(middleware.ErrorHandler("error"))

	router.GET("/hello", handler.Hello)
	router.POST("/signup", handler.Signup)
	router.POST("/signin", handler.Signin)
	router.POST("/signin/new_token", handler.RefreshSession)

	sessionRoutes := router.Group("/", middleware.BearerAuth())
	{
		sessionRoutes.GET("/logout", handler.Logout)
		sessionRoutes.GET("/info", handler.Info)
	}

	fileRoutes := router.Group("/file", middleware.BearerAuth())
	{
		fileRoutes.POST("/upload", handler.UploadFile)
		fileRoutes.GET("/list", handler.ListFiles)
		fileRoutes.GET("/:id", handler.GetFile)
		fileRoutes.GET("/:id/download", handler.DownloadFile)
		fileRoutes.PUT("/update/:id", handler.UpdateFile)
		fileRoutes.DELETE("/delete/:id", handler.DeleteFile)
	}
}
