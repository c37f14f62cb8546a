package models

import (
	"fmt"

	"inventory-sync/core/diffsync"
)

// Device is a network device.
type Device struct {
	Name     string
	Site     string
	Platform string
	Model    string
	Role     string
	Serial   string

	Interfaces []string
}

// NewDevice is the diffsync.Factory for devices.
func NewDevice(ids diffsync.Identity, attrs diffsync.Attrs) (diffsync.Model, error) {
	if err := checkIdentity(DeviceSchema, ids); err != nil {
		return nil, err
	}
	d := &Device{Name: ids[0]}
	if err := d.SetAttrs(attrs); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) Schema() *diffsync.Schema     { return DeviceSchema }
func (d *Device) Identity() diffsync.Identity { return diffsync.Identity{d.Name} }

func (d *Device) Attrs() diffsync.Attrs {
	return diffsync.Attrs{
		AttrSite:     d.Site,
		AttrPlatform: d.Platform,
		AttrModel:    d.Model,
		AttrRole:     d.Role,
		AttrSerial:   d.Serial,
	}
}

func (d *Device) ChildIDs(field string) []string {
	if field == FieldInterfaces {
		return d.Interfaces
	}
	return nil
}

func (d *Device) AddChildID(field, id string) {
	if field == FieldInterfaces {
		d.Interfaces = diffsync.AppendID(d.Interfaces, id)
	}
}

func (d *Device) RemoveChildID(field, id string) {
	if field == FieldInterfaces {
		d.Interfaces = diffsync.RemoveID(d.Interfaces, id)
	}
}

// SetAttrs overwrites the named attributes.
func (d *Device) SetAttrs(attrs diffsync.Attrs) error {
	for name, v := range attrs {
		var err error
		switch name {
		case AttrSite:
			err = setString(&d.Site, v)
		case AttrPlatform:
			err = setString(&d.Platform, v)
		case AttrModel:
			err = setString(&d.Model, v)
		case AttrRole:
			err = setString(&d.Role, v)
		case AttrSerial:
			err = setString(&d.Serial, v)
		default:
			err = unknownAttr(DeviceSchema, name)
		}
		if err != nil {
			return fmt.Errorf("device %s: %s: %w", d.Name, name, err)
		}
	}
	return nil
}
