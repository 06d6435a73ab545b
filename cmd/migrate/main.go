package main

import (
	"blockauth/internal/config" // Custom import path (Config)
	"blockauth/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Create tables and unique indexes
}
