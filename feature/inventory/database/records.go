package database

import (
	"inventory-sync/core/diffsync"
	"inventory-sync/feature/inventory/models"
)

// SiteRecord is a row of the sites table.
type SiteRecord struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name;size:191;not null;uniqueIndex:idx_sites_key"`
}

func (SiteRecord) TableName() string { return "sites" }

// DeviceRecord is a row of the devices table.
type DeviceRecord struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"column:name;size:191;not null;uniqueIndex:idx_devices_key"`
	Site     string `gorm:"column:site;size:191;index"`
	Platform string `gorm:"column:platform;size:64"`
	Model    string `gorm:"column:model;size:64"`
	Role     string `gorm:"column:role;size:64"`
	Serial   string `gorm:"column:serial;size:64"`
}

func (DeviceRecord) TableName() string { return "devices" }

// InterfaceRecord is a row of the interfaces table.
type InterfaceRecord struct {
	ID          uint   `gorm:"primaryKey"`
	Device      string `gorm:"column:device;size:191;not null;uniqueIndex:idx_interfaces_key"`
	Name        string `gorm:"column:name;size:191;not null;uniqueIndex:idx_interfaces_key"`
	Description string `gorm:"column:description;size:255"`
	MTU         int    `gorm:"column:mtu"`
	Enabled     bool   `gorm:"column:enabled"`
	Mode        string `gorm:"column:mode;size:32"`
	IsLAG       bool   `gorm:"column:is_lag"`
	IsLAGMember bool   `gorm:"column:is_lag_member"`
	ParentLAG   string `gorm:"column:parent_lag;size:191"`
}

func (InterfaceRecord) TableName() string { return "interfaces" }

// IPAddressRecord is a row of the ip_addresses table.
type IPAddressRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Device    string `gorm:"column:device;size:191;not null;uniqueIndex:idx_ip_addresses_key"`
	Interface string `gorm:"column:interface;size:191;not null;uniqueIndex:idx_ip_addresses_key"`
	Address   string `gorm:"column:address;size:64;not null;uniqueIndex:idx_ip_addresses_key"`
	Role      string `gorm:"column:role;size:32"`
}

func (IPAddressRecord) TableName() string { return "ip_addresses" }

// CableRecord is a row of the cables table.
type CableRecord struct {
	ID             uint   `gorm:"primaryKey"`
	SideADevice    string `gorm:"column:side_a_device;size:191;not null;uniqueIndex:idx_cables_key"`
	SideAInterface string `gorm:"column:side_a_interface;size:191;not null;uniqueIndex:idx_cables_key"`
	SideZDevice    string `gorm:"column:side_z_device;size:191;not null;uniqueIndex:idx_cables_key"`
	SideZInterface string `gorm:"column:side_z_interface;size:191;not null;uniqueIndex:idx_cables_key"`
	Status         string `gorm:"column:status;size:32"`
}

func (CableRecord) TableName() string { return "cables" }

// table binds an inventory type to its gorm record.
type table struct {
	schema *diffsync.Schema
	name   string
	// empty returns a zero record, used as the gorm model.
	empty func() any
	// record converts a model of the table's type into a row.
	record func(m diffsync.Model) any
}

// tables is ordered parents first, which is also the populate order.
var tables = []table{
	{
		schema: models.SiteSchema,
		name:   SiteRecord{}.TableName(),
		empty:  func() any { return &SiteRecord{} },
		record: func(m diffsync.Model) any {
			return &SiteRecord{Name: m.(*models.Site).Name}
		},
	},
	{
		schema: models.DeviceSchema,
		name:   DeviceRecord{}.TableName(),
		empty:  func() any { return &DeviceRecord{} },
		record: func(m diffsync.Model) any {
			d := m.(*models.Device)
			return &DeviceRecord{Name: d.Name, Site: d.Site, Platform: d.Platform, Model: d.Model, Role: d.Role, Serial: d.Serial}
		},
	},
	{
		schema: models.InterfaceSchema,
		name:   InterfaceRecord{}.TableName(),
		empty:  func() any { return &InterfaceRecord{} },
		record: func(m diffsync.Model) any {
			i := m.(*models.Interface)
			return &InterfaceRecord{
				Device: i.Device, Name: i.Name, Description: i.Description, MTU: i.MTU, Enabled: i.Enabled,
				Mode: i.Mode, IsLAG: i.IsLAG, IsLAGMember: i.IsLAGMember, ParentLAG: i.ParentLAG,
			}
		},
	},
	{
		schema: models.IPAddressSchema,
		name:   IPAddressRecord{}.TableName(),
		empty:  func() any { return &IPAddressRecord{} },
		record: func(m diffsync.Model) any {
			a := m.(*models.IPAddress)
			return &IPAddressRecord{Device: a.Device, Interface: a.Interface, Address: a.Address, Role: a.Role}
		},
	},
	{
		schema: models.CableSchema,
		name:   CableRecord{}.TableName(),
		empty:  func() any { return &CableRecord{} },
		record: func(m diffsync.Model) any {
			c := m.(*models.Cable)
			return &CableRecord{
				SideADevice: c.SideADevice, SideAInterface: c.SideAInterface,
				SideZDevice: c.SideZDevice, SideZInterface: c.SideZInterface, Status: c.Status,
			}
		},
	},
}

// columns lists identifier then attribute columns. Column names equal the
// schema field names.
func (t table) columns() []string {
	cols := append([]string{}, t.schema.Identifiers...)
	return append(cols, t.schema.Attributes...)
}

// keyCondition selects the row identified by ids.
func (t table) keyCondition(ids diffsync.Identity) map[string]any {
	cond := make(map[string]any, len(ids))
	for i, col := range t.schema.Identifiers {
		cond[col] = ids[i]
	}
	return cond
}
