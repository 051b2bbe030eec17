package model

import (
	"os"
	"path/filepath"

	"filevault/common"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the database and migrates the given models. MySQL is used
// when SQL_DSN is set, otherwise SQLite.
func InitDB(models ...any) (err error) {
	var dbInstance *gorm.DB

	if common.SQLDsn != "" {
		common.SysLog("Using MySQL database")
		dbInstance, err = gorm.Open(mysql.Open(common.SQLDsn), &gorm.Config{
			PrepareStmt: true,
		})
	} else {
		common.SysLog("SQL_DSN not set, using SQLite as database: " + common.SQLitePath)
		if dir := filepath.Dir(common.SQLitePath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		dbInstance, err = gorm.Open(sqlite.Open(common.SQLitePath), &gorm.Config{
			PrepareStmt: true,
		})
	}

	if err != nil {
		common.FatalLog("failed to connect database: " + err.Error())
		return err
	}

	if common.SQLDsn == "" {
		// SQLite allows a single writer; capping the pool at one
		// connection makes concurrent write transactions queue instead
		// of failing with a busy error.
		sqlDB, err := dbInstance.DB()
		if err != nil {
			return err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	DB = dbInstance

	if err = DB.AutoMigrate(models...); err != nil {
		common.FatalLog("failed to auto migrate database schema: " + err.Error())
		return err
	}

	common.SysLog("Database initialized successfully.")
	return nil
}

func CloseDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	common.SysLog("Closing database connection.")
	return sqlDB.Close()
}
