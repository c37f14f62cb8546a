package models

import (
	"fmt"

	"inventory-sync/core/diffsync"
)

// Interface is a device interface. LAG bundles set IsLAG; their members set
// IsLAGMember and name the bundle in ParentLAG.
type Interface struct {
	Device      string
	Name        string
	Description string
	MTU         int
	Enabled     bool
	Mode        string
	IsLAG       bool
	IsLAGMember bool
	ParentLAG   string

	IPAddresses []string
}

// NewInterface is the diffsync.Factory for interfaces.
func NewInterface(ids diffsync.Identity, attrs diffsync.Attrs) (diffsync.Model, error) {
	if err := checkIdentity(InterfaceSchema, ids); err != nil {
		return nil, err
	}
	i := &Interface{Device: ids[0], Name: ids[1]}
	if err := i.SetAttrs(attrs); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *Interface) Schema() *diffsync.Schema { return InterfaceSchema }

func (i *Interface) Identity() diffsync.Identity {
	return diffsync.Identity{i.Device, i.Name}
}

func (i *Interface) Attrs() diffsync.Attrs {
	return diffsync.Attrs{
		AttrDescription: i.Description,
		AttrMTU:         i.MTU,
		AttrEnabled:     i.Enabled,
		AttrMode:        i.Mode,
		AttrIsLAG:       i.IsLAG,
		AttrIsLAGMember: i.IsLAGMember,
		AttrParentLAG:   i.ParentLAG,
	}
}

func (i *Interface) ChildIDs(field string) []string {
	if field == FieldIPAddresses {
		return i.IPAddresses
	}
	return nil
}

func (i *Interface) AddChildID(field, id string) {
	if field == FieldIPAddresses {
		i.IPAddresses = diffsync.AppendID(i.IPAddresses, id)
	}
}

func (i *Interface) RemoveChildID(field, id string) {
	if field == FieldIPAddresses {
		i.IPAddresses = diffsync.RemoveID(i.IPAddresses, id)
	}
}

// SetAttrs overwrites the named attributes.
func (i *Interface) SetAttrs(attrs diffsync.Attrs) error {
	for name, v := range attrs {
		var err error
		switch name {
		case AttrDescription:
			err = setString(&i.Description, v)
		case AttrMTU:
			err = setInt(&i.MTU, v)
		case AttrEnabled:
			err = setBool(&i.Enabled, v)
		case AttrMode:
			err = setString(&i.Mode, v)
		case AttrIsLAG:
			err = setBool(&i.IsLAG, v)
		case AttrIsLAGMember:
			err = setBool(&i.IsLAGMember, v)
		case AttrParentLAG:
			err = setString(&i.ParentLAG, v)
		default:
			err = unknownAttr(InterfaceSchema, name)
		}
		if err != nil {
			return fmt.Errorf("interface %s/%s: %s: %w", i.Device, i.Name, name, err)
		}
	}
	return nil
}
