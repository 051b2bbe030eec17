package common

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

var (
	Port         = flag.Int("port", 3000, "the listening port")
	ConfigPath   = flag.String("config", "config.ini", "path to the config file")
	PrintVersion = flag.Bool("version", false, "print version and exit")
)

var Version = "v0.1.0"

var (
	SQLitePath = "data/filevault.db"
	SQLDsn     = ""
	UploadPath = "files"
	EnableGzip = false
	// ThrottleQPS caps requests per second per client IP; zero disables
	// the global throttle.
	ThrottleQPS = 0
)

// InitConfig loads the optional ini config file, then lets environment
// variables override it. Call after flag.Parse.
func InitConfig() error {
	if _, err := os.Stat(*ConfigPath); err == nil {
		cfg, err := ini.Load(*ConfigPath)
		if err != nil {
			return fmt.Errorf("parse ini config %s: %w", *ConfigPath, err)
		}
		configMap := make(map[string]string)
		for _, section := range cfg.Sections() {
			for _, key := range section.Keys() {
				configKey := strings.ToUpper(strings.TrimSpace(key.Name()))
				if configKey == "" {
					continue
				}
				configMap[configKey] = strings.TrimSpace(key.Value())
			}
		}
		if err := applyConfigMap(configMap); err != nil {
			return fmt.Errorf("apply config file %s: %w", *ConfigPath, err)
		}
	}

	envMap := make(map[string]string)
	for _, name := range []string{"PORT", "SQLITE_PATH", "SQL_DSN", "UPLOAD_PATH", "ENABLE_GZIP", "THROTTLE_QPS"} {
		if value := os.Getenv(name); value != "" {
			envMap[name] = value
		}
	}
	return applyConfigMap(envMap)
}

func applyConfigMap(configMap map[string]string) error {
	if configValue, ok := configMap["SQLITE_PATH"]; ok && configValue != "" {
		SQLitePath = configValue
	}

	if configValue, ok := configMap["SQL_DSN"]; ok && configValue != "" {
		SQLDsn = configValue
	}

	if configValue, ok := configMap["UPLOAD_PATH"]; ok && configValue != "" {
		UploadPath = configValue
	}

	if configValue, ok := configMap["PORT"]; ok && configValue != "" {
		portInt, err := strconv.Atoi(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for PORT: %w", err)
		}
		*Port = portInt
	}

	if configValue, ok := configMap["ENABLE_GZIP"]; ok && configValue != "" {
		enableGzipBool, err := strconv.ParseBool(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for ENABLE_GZIP: %w", err)
		}
		EnableGzip = enableGzipBool
	}

	if configValue, ok := configMap["THROTTLE_QPS"]; ok && configValue != "" {
		qps, err := strconv.Atoi(configValue)
		if err != nil {
			return fmt.Errorf("invalid value for THROTTLE_QPS: %w", err)
		}
		ThrottleQPS = qps
	}

	return nil
}
