package db

import (
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
	"gorm.io/gorm/logger"   // GORM query logger
)

// Open opens (or creates) the single-file SQLite database at path
func Open(path string) (*gorm.DB, error) {
	d, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn), // Keep query noise out of the request log
	})
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers internally; the busy timeout keeps a second
	// writer waiting instead of failing immediately.
	d.Exec(`PRAGMA busy_timeout=5000`)
	return d, nil
}
