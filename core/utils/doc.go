// Package utils provides common utility functions for inventory-sync.
// It includes strict conversions for loosely typed attribute values coming
// from JSON, TOML and SQL rows.
package utils
