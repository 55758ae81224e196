package main

import (
	"beneficiary_registry/internal/config" // Custom import path (Config)
	"beneficiary_registry/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	database, err := db.Open(cfg.DBPath) // Open the SQLite database file
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
}
