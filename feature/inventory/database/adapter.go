package database

import (
	"context"
	"fmt"

	coredb "inventory-sync/core/database"
	"inventory-sync/core/diffsync"
	"inventory-sync/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Adapter populates an inventory store from the database and makes the
// store write changes back to it.
type Adapter struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAdapter creates a database adapter.
func NewAdapter(db *gorm.DB, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{db: db, logger: logger}
}

// Migrate creates or updates the inventory tables.
func (a *Adapter) Migrate(ctx context.Context) error {
	records := make([]any, 0, len(tables))
	for _, t := range tables {
		records = append(records, t.empty())
	}
	if err := a.db.WithContext(ctx).AutoMigrate(records...); err != nil {
		return fmt.Errorf("failed to migrate inventory tables: %w", err)
	}
	return nil
}

// CheckSchema verifies every inventory table carries the columns the models need.
func (a *Adapter) CheckSchema() error {
	for _, t := range tables {
		missing, err := coredb.MissingColumns(a.db, t.name, t.columns())
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns %v", t.name, missing)
		}
	}
	return nil
}

// Populate loads all rows into store and installs write-through handlers on
// its registry, so syncing into store also updates the database.
func (a *Adapter) Populate(ctx context.Context, store *diffsync.Store) error {
	if err := a.CheckSchema(); err != nil {
		return err
	}

	db := a.db.WithContext(ctx)
	b := models.NewBuilder(store)

	var sites []SiteRecord
	if err := db.Order("id").Find(&sites).Error; err != nil {
		return fmt.Errorf("failed to load sites: %w", err)
	}
	for _, r := range sites {
		if _, err := b.Site(r.Name); err != nil {
			return err
		}
	}

	var devices []DeviceRecord
	if err := db.Order("id").Find(&devices).Error; err != nil {
		return fmt.Errorf("failed to load devices: %w", err)
	}
	for _, r := range devices {
		_, err := b.Device(r.Name, diffsync.Attrs{
			models.AttrSite:     r.Site,
			models.AttrPlatform: r.Platform,
			models.AttrModel:    r.Model,
			models.AttrRole:     r.Role,
			models.AttrSerial:   r.Serial,
		})
		if err != nil {
			return err
		}
	}

	var interfaces []InterfaceRecord
	if err := db.Order("id").Find(&interfaces).Error; err != nil {
		return fmt.Errorf("failed to load interfaces: %w", err)
	}
	for _, r := range interfaces {
		_, err := b.Interface(r.Device, r.Name, diffsync.Attrs{
			models.AttrDescription: r.Description,
			models.AttrMTU:         r.MTU,
			models.AttrEnabled:     r.Enabled,
			models.AttrMode:        r.Mode,
			models.AttrIsLAG:       r.IsLAG,
			models.AttrIsLAGMember: r.IsLAGMember,
			models.AttrParentLAG:   r.ParentLAG,
		})
		if err != nil {
			return err
		}
	}

	var addresses []IPAddressRecord
	if err := db.Order("id").Find(&addresses).Error; err != nil {
		return fmt.Errorf("failed to load ip addresses: %w", err)
	}
	for _, r := range addresses {
		if _, err := b.IPAddress(r.Device, r.Interface, r.Address, diffsync.Attrs{models.AttrRole: r.Role}); err != nil {
			return err
		}
	}

	var cables []CableRecord
	if err := db.Order("id").Find(&cables).Error; err != nil {
		return fmt.Errorf("failed to load cables: %w", err)
	}
	for _, r := range cables {
		attrs := diffsync.Attrs{models.AttrStatus: r.Status}
		if _, err := b.Cable(r.SideADevice, r.SideAInterface, r.SideZDevice, r.SideZInterface, attrs); err != nil {
			return err
		}
	}

	if err := Install(a.db, store.Registry()); err != nil {
		return err
	}

	a.logger.Info("Database inventory loaded",
		zap.String("store", store.Name()),
		zap.Int("sites", len(sites)),
		zap.Int("devices", len(devices)),
		zap.Int("interfaces", len(interfaces)),
		zap.Int("ip_addresses", len(addresses)),
		zap.Int("cables", len(cables)),
	)
	return nil
}
