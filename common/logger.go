package common

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

var sysLogger = log.New(os.Stderr, "", log.LstdFlags)

// SetupGinLog routes gin's own output to the standard streams.
func SetupGinLog() {
	gin.DefaultWriter = os.Stdout
	gin.DefaultErrorWriter = os.Stderr
}

func SysLog(s string) {
	sysLogger.Println("[SYS] " + s)
}

func SysError(s string) {
	sysLogger.Println("[ERR] " + s)
}

func FatalLog(v any) {
	sysLogger.Fatalln("[FATAL] " + fmt.Sprint(v))
}
