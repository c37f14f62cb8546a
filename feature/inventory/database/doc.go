// Package database stores the inventory in SQL tables through GORM.
//
// The Adapter loads the sites, devices, interfaces, ip_addresses and cables
// tables into an inventory store. Populate also installs a Handler per type on
// the store registry; during sync each handler writes the row first and only
// then changes the in-memory model. A rejected write surfaces as a
// diffsync.CrudError, so the sync reports it and moves on.
//
// # Usage
//
//	adapter := database.NewAdapter(db, logger)
//	if err := adapter.Migrate(ctx); err != nil {
//	    return err
//	}
//	current := models.NewStore("database")
//	if err := adapter.Populate(ctx, current); err != nil {
//	    return err
//	}
package database
