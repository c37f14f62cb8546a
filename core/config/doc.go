// Package config provides configuration management for inventory-sync.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional .env file and an optional inventory-sync.toml file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Inventory: snapshot source and reconciliation destination
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Inventory.Destination)
package config
