package models

import (
	"fmt"

	"inventory-sync/core/diffsync"
	"inventory-sync/core/utils"

	"go.uber.org/zap"
)

// Model type names.
const (
	TypeSite      = "site"
	TypeDevice    = "device"
	TypeInterface = "interface"
	TypeIPAddress = "ip_address"
	TypeCable     = "cable"
)

// Child id list fields.
const (
	FieldInterfaces  = "interfaces"
	FieldIPAddresses = "ip_addresses"
)

// Attribute names.
const (
	AttrSite        = "site"
	AttrPlatform    = "platform"
	AttrModel       = "model"
	AttrRole        = "role"
	AttrSerial      = "serial"
	AttrDescription = "description"
	AttrMTU         = "mtu"
	AttrEnabled     = "enabled"
	AttrMode        = "mode"
	AttrIsLAG       = "is_lag"
	AttrIsLAGMember = "is_lag_member"
	AttrParentLAG   = "parent_lag"
	AttrStatus      = "status"
)

var (
	// SiteSchema describes sites.
	SiteSchema = &diffsync.Schema{
		Type:        TypeSite,
		Identifiers: []string{"name"},
	}

	// DeviceSchema describes devices. A device is top-level and names its
	// site through an attribute, so moving it between sites is an update.
	DeviceSchema = &diffsync.Schema{
		Type:        TypeDevice,
		Identifiers: []string{"name"},
		Attributes:  []string{AttrSite, AttrPlatform, AttrModel, AttrRole, AttrSerial},
		Children:    []diffsync.ChildSpec{{Type: TypeInterface, Field: FieldInterfaces}},
	}

	// InterfaceSchema describes device interfaces.
	InterfaceSchema = &diffsync.Schema{
		Type:        TypeInterface,
		Identifiers: []string{"device", "name"},
		Attributes: []string{
			AttrDescription, AttrMTU, AttrEnabled, AttrMode,
			AttrIsLAG, AttrIsLAGMember, AttrParentLAG,
		},
		Children: []diffsync.ChildSpec{{Type: TypeIPAddress, Field: FieldIPAddresses}},
	}

	// IPAddressSchema describes addresses assigned to interfaces.
	IPAddressSchema = &diffsync.Schema{
		Type:        TypeIPAddress,
		Identifiers: []string{"device", "interface", "address"},
		Attributes:  []string{AttrRole},
	}

	// CableSchema describes point-to-point cables.
	CableSchema = &diffsync.Schema{
		Type:        TypeCable,
		Identifiers: []string{"side_a_device", "side_a_interface", "side_z_device", "side_z_interface"},
		Attributes:  []string{AttrStatus},
	}
)

// TopLevel is the order in which inventory diffing starts. Sites come before
// devices so a device's new site exists when the device is created or moved.
var TopLevel = []string{TypeSite, TypeDevice, TypeCable}

// NewRegistry returns a registry holding every inventory type, without CRUD
// overrides. Each store gets its own registry so adapters can install
// handlers on the destination only.
func NewRegistry() *diffsync.Registry {
	r := diffsync.NewRegistry()
	r.MustRegister(SiteSchema, NewSite)
	r.MustRegister(DeviceSchema, NewDevice)
	r.MustRegister(InterfaceSchema, NewInterface)
	r.MustRegister(IPAddressSchema, NewIPAddress)
	r.MustRegister(CableSchema, NewCable)
	return r
}

// NewStore returns an empty inventory store.
func NewStore(name string) *diffsync.Store {
	return diffsync.NewStore(name, NewRegistry(), TopLevel...)
}

// NewDiffer returns a differ with the inventory ordering policies installed.
func NewDiffer(logger *zap.Logger) *diffsync.Differ {
	return diffsync.NewDiffer(
		diffsync.WithLogger(logger),
		diffsync.WithOrdering(TypeInterface, diffsync.BundleOrder{
			Classify: diffsync.LagClassifier(AttrIsLAG, AttrIsLAGMember),
		}),
	)
}

func checkIdentity(schema *diffsync.Schema, ids diffsync.Identity) error {
	if len(ids) != len(schema.Identifiers) {
		return fmt.Errorf("%s: expected %d identifier values %v, got %d", schema.Type, len(schema.Identifiers), schema.Identifiers, len(ids))
	}
	for i, v := range ids {
		if v == "" {
			return fmt.Errorf("%s: empty identifier %s", schema.Type, schema.Identifiers[i])
		}
	}
	return nil
}

func unknownAttr(schema *diffsync.Schema, name string) error {
	return fmt.Errorf("%s has no attribute %q", schema.Type, name)
}

func setString(dst *string, v any) error {
	s, err := utils.ToString(v)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func setInt(dst *int, v any) error {
	i, err := utils.ToInt(v)
	if err != nil {
		return err
	}
	*dst = i
	return nil
}

func setBool(dst *bool, v any) error {
	b, err := utils.ToBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
