package models

import (
	"fmt"

	"inventory-sync/core/diffsync"
)

// Builder adds inventory objects to a store and links each one to its parent.
// Adapters reading flat rows or nested documents both populate through it.
type Builder struct {
	store *diffsync.Store
}

// NewBuilder returns a Builder writing to store.
func NewBuilder(store *diffsync.Store) *Builder {
	return &Builder{store: store}
}

// Site returns the named site, adding it first when absent.
func (b *Builder) Site(name string) (*Site, error) {
	if m, err := b.store.Get(TypeSite, diffsync.Identity{name}); err == nil {
		return m.(*Site), nil
	}
	m, err := NewSite(diffsync.Identity{name}, nil)
	if err != nil {
		return nil, err
	}
	if err := b.store.Add(m); err != nil {
		return nil, err
	}
	return m.(*Site), nil
}

// Device adds a top-level device, adding the site named by its site attribute
// first when absent.
func (b *Builder) Device(name string, attrs diffsync.Attrs) (*Device, error) {
	m, err := NewDevice(diffsync.Identity{name}, attrs)
	if err != nil {
		return nil, err
	}
	dev := m.(*Device)
	if dev.Site == "" {
		return nil, fmt.Errorf("device %s: %s is required", name, AttrSite)
	}
	if _, err := b.Site(dev.Site); err != nil {
		return nil, err
	}
	if err := b.store.Add(dev); err != nil {
		return nil, err
	}
	return dev, nil
}

// Interface adds an interface under an existing device.
func (b *Builder) Interface(device, name string, attrs diffsync.Attrs) (*Interface, error) {
	parent, err := b.store.Get(TypeDevice, diffsync.Identity{device})
	if err != nil {
		return nil, fmt.Errorf("interface %s: %w", name, err)
	}
	m, err := NewInterface(diffsync.Identity{device, name}, attrs)
	if err != nil {
		return nil, err
	}
	if err := b.store.AddChild(parent, m); err != nil {
		return nil, err
	}
	return m.(*Interface), nil
}

// IPAddress adds an address under an existing interface.
func (b *Builder) IPAddress(device, intf, address string, attrs diffsync.Attrs) (*IPAddress, error) {
	parent, err := b.store.Get(TypeInterface, diffsync.Identity{device, intf})
	if err != nil {
		return nil, fmt.Errorf("ip address %s: %w", address, err)
	}
	m, err := NewIPAddress(diffsync.Identity{device, intf, address}, attrs)
	if err != nil {
		return nil, err
	}
	if err := b.store.AddChild(parent, m); err != nil {
		return nil, err
	}
	return m.(*IPAddress), nil
}

// Cable adds a top-level cable between two interfaces.
func (b *Builder) Cable(aDevice, aIntf, zDevice, zIntf string, attrs diffsync.Attrs) (*Cable, error) {
	m, err := NewCable(diffsync.Identity{aDevice, aIntf, zDevice, zIntf}, attrs)
	if err != nil {
		return nil, err
	}
	if err := b.store.Add(m); err != nil {
		return nil, err
	}
	return m.(*Cable), nil
}
