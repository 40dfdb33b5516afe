package config

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects to the configured store and applies the pool limits.
func OpenDatabase(c *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.DBDriver {
	case DriverSQLite:
		dialector = sqlite.Open(c.DSN())
	default:
		dialector = postgres.Open(c.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger(c.DBLogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", c.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}

	if c.DBDriver == DriverSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(c.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(c.DBMaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(c.DBConnMaxLifetime)

	return db, nil
}

// CloseDatabase releases the connection pool.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLogger(level string) logger.Interface {
	switch level {
	case "silent":
		return logger.Default.LogMode(logger.Silent)
	case "error":
		return logger.Default.LogMode(logger.Error)
	case "info":
		return logger.Default.LogMode(logger.Info)
	default:
		return logger.Default.LogMode(logger.Warn)
	}
}
