// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL or SQLite connections from the application
// configuration. SQLite is used for local inventories and tests.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let adapters verify that the tables they
// read from carry the columns they expect before populating a store.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "interfaces", []string{"mtu"})
package database
