package db

import (
	"beneficiary_registry/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema and seeds
// the default rows. Safe to call on every process start.
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing constraints, columns and indexes
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Employee{},
		&domain.Department{},
		&domain.Capacity{},
		&domain.Description{},
		&domain.Record{},
	)
	if err != nil {
		return err // Caller decides whether this is fatal
	}
	if err := Seed(db); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
