package main

import (
	"classroom_balance/internal/config" // Custom import path (Config)
	"classroom_balance/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Creates the students table and the unique index on code
	db.Migrate(cfg.DSN())
}
