package models

import (
	"fmt"
	"net/netip"

	"inventory-sync/core/diffsync"
)

// IPAddress is an address (CIDR notation) assigned to an interface.
type IPAddress struct {
	Device    string
	Interface string
	Address   string
	Role      string
}

// NewIPAddress is the diffsync.Factory for IP addresses. The address must be
// in CIDR notation and is kept in canonical form, so "2001:db8:0::1/64" and
// "2001:db8::1/64" are the same identity.
func NewIPAddress(ids diffsync.Identity, attrs diffsync.Attrs) (diffsync.Model, error) {
	if err := checkIdentity(IPAddressSchema, ids); err != nil {
		return nil, err
	}
	prefix, err := netip.ParsePrefix(ids[2])
	if err != nil {
		return nil, fmt.Errorf("ip_address %s: %w", ids[2], err)
	}
	a := &IPAddress{Device: ids[0], Interface: ids[1], Address: prefix.String()}
	if err := a.SetAttrs(attrs); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *IPAddress) Schema() *diffsync.Schema { return IPAddressSchema }

func (a *IPAddress) Identity() diffsync.Identity {
	return diffsync.Identity{a.Device, a.Interface, a.Address}
}

func (a *IPAddress) Attrs() diffsync.Attrs {
	return diffsync.Attrs{AttrRole: a.Role}
}

func (a *IPAddress) ChildIDs(string) []string { return nil }

// SetAttrs overwrites the named attributes.
func (a *IPAddress) SetAttrs(attrs diffsync.Attrs) error {
	for name, v := range attrs {
		var err error
		switch name {
		case AttrRole:
			err = setString(&a.Role, v)
		default:
			err = unknownAttr(IPAddressSchema, name)
		}
		if err != nil {
			return fmt.Errorf("ip_address %s: %s: %w", a.Address, name, err)
		}
	}
	return nil
}
