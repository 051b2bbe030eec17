package main

import (
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"filevault/api/route"
	"filevault/common"
	"filevault/model"

	"github.com/gin-gonic/gin"
)

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}

	common.SetupGinLog()
	common.SysLog("filevault file server " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := common.InitConfig(); err != nil {
		common.FatalLog(err)
	}
	if err := os.MkdirAll(common.UploadPath, 0o755); err != nil {
		common.FatalLog(err)
	}
	if err := model.InitDB(&model.User{}, &model.Session{}, &model.File{}); err != nil {
		common.FatalLog(err)
	}

	server := gin.New()
	server.Use(gin.Logger())
	route.SetFileRouter(server)

	setupGracefulShutdown()

	port := strconv.Itoa(*common.Port)
	common.SysLog("Server listening on port: " + port)
	if err := server.Run(":" + port); err != nil {
		common.FatalLog("failed to start server: " + err.Error())
	}
}

func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		common.SysLog("Shutting down...")
		if err := model.CloseDB(); err != nil {
			common.SysError("error closing database: " + err.Error())
		}
		os.Exit(0)
	}()
}
