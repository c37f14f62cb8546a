package config

import "fmt"

// Destination kinds for InventoryConfig.Destination.
const (
	DestinationDatabase = "database"
	DestinationSnapshot = "snapshot"
)

// InventoryConfig selects where the desired and current inventories come from.
type InventoryConfig struct {
	// SourcePath is a local snapshot file holding the desired inventory.
	SourcePath string `mapstructure:"source_path" default:"inventory.json"`
	// SourceObject, when set, reads the desired inventory from the storage bucket instead.
	SourceObject string `mapstructure:"source_object" default:""`
	// Destination is the system being reconciled (database, snapshot).
	Destination string `mapstructure:"destination" default:"database"`
	// DestinationPath is the snapshot file used when Destination is snapshot.
	DestinationPath string `mapstructure:"destination_path" default:""`
	// ExportObject is the object name written by sync --export.
	ExportObject string `mapstructure:"export_object" default:"exports/inventory.json"`
}

// Validate checks that the inventory settings are consistent.
func (c InventoryConfig) Validate() error {
	if c.SourcePath == "" && c.SourceObject == "" {
		return fmt.Errorf("inventory source is not configured")
	}
	switch c.Destination {
	case DestinationDatabase:
		return nil
	case DestinationSnapshot:
		if c.DestinationPath == "" {
			return fmt.Errorf("inventory destination_path is required for snapshot destination")
		}
		return nil
	default:
		return fmt.Errorf("unknown inventory destination %q", c.Destination)
	}
}
