package models

import (
	"fmt"

	"inventory-sync/core/diffsync"
)

// Cable connects two interfaces. Endpoints are referenced by name.
type Cable struct {
	SideADevice    string
	SideAInterface string
	SideZDevice    string
	SideZInterface string
	Status         string
}

// NewCable is the diffsync.Factory for cables.
func NewCable(ids diffsync.Identity, attrs diffsync.Attrs) (diffsync.Model, error) {
	if err := checkIdentity(CableSchema, ids); err != nil {
		return nil, err
	}
	c := &Cable{SideADevice: ids[0], SideAInterface: ids[1], SideZDevice: ids[2], SideZInterface: ids[3]}
	if err := c.SetAttrs(attrs); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cable) Schema() *diffsync.Schema { return CableSchema }

func (c *Cable) Identity() diffsync.Identity {
	return diffsync.Identity{c.SideADevice, c.SideAInterface, c.SideZDevice, c.SideZInterface}
}

func (c *Cable) Attrs() diffsync.Attrs {
	return diffsync.Attrs{AttrStatus: c.Status}
}

func (c *Cable) ChildIDs(string) []string { return nil }

// SetAttrs overwrites the named attributes.
func (c *Cable) SetAttrs(attrs diffsync.Attrs) error {
	for name, v := range attrs {
		var err error
		switch name {
		case AttrStatus:
			err = setString(&c.Status, v)
		default:
			err = unknownAttr(CableSchema, name)
		}
		if err != nil {
			return fmt.Errorf("cable: %s: %w", name, err)
		}
	}
	return nil
}
