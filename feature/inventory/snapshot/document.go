package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownFormat is returned for snapshot names without a .json or .toml extension.
var ErrUnknownFormat = errors.New("unknown snapshot format")

// Document is a declarative inventory: sites own devices, devices own
// interfaces, interfaces own addresses. Cables sit beside the site tree.
type Document struct {
	Sites  []Site  `json:"sites" toml:"sites"`
	Cables []Cable `json:"cables,omitempty" toml:"cables,omitempty"`
}

// Site groups the devices installed at one location.
type Site struct {
	Name    string   `json:"name" toml:"name"`
	Devices []Device `json:"devices,omitempty" toml:"devices,omitempty"`
}

// Device is a network device.
type Device struct {
	Name       string      `json:"name" toml:"name"`
	Platform   string      `json:"platform,omitempty" toml:"platform,omitempty"`
	Model      string      `json:"model,omitempty" toml:"model,omitempty"`
	Role       string      `json:"role,omitempty" toml:"role,omitempty"`
	Serial     string      `json:"serial,omitempty" toml:"serial,omitempty"`
	Interfaces []Interface `json:"interfaces,omitempty" toml:"interfaces,omitempty"`
}

// Interface is a device port or logical interface.
type Interface struct {
	Name        string      `json:"name" toml:"name"`
	Description string      `json:"description,omitempty" toml:"description,omitempty"`
	MTU         int         `json:"mtu,omitempty" toml:"mtu,omitempty"`
	Enabled     bool        `json:"enabled" toml:"enabled"`
	Mode        string      `json:"mode,omitempty" toml:"mode,omitempty"`
	IsLAG       bool        `json:"is_lag,omitempty" toml:"is_lag,omitempty"`
	IsLAGMember bool        `json:"is_lag_member,omitempty" toml:"is_lag_member,omitempty"`
	ParentLAG   string      `json:"parent_lag,omitempty" toml:"parent_lag,omitempty"`
	IPAddresses []IPAddress `json:"ip_addresses,omitempty" toml:"ip_addresses,omitempty"`
}

// IPAddress is an address in CIDR notation.
type IPAddress struct {
	Address string `json:"address" toml:"address"`
	Role    string `json:"role,omitempty" toml:"role,omitempty"`
}

// Cable links two device interfaces.
type Cable struct {
	SideADevice    string `json:"side_a_device" toml:"side_a_device"`
	SideAInterface string `json:"side_a_interface" toml:"side_a_interface"`
	SideZDevice    string `json:"side_z_device" toml:"side_z_device"`
	SideZInterface string `json:"side_z_interface" toml:"side_z_interface"`
	Status         string `json:"status,omitempty" toml:"status,omitempty"`
}

// Format returns "json" or "toml" from the extension of name.
func Format(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return "json", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// Decode parses data in the format implied by name.
func Decode(name string, data []byte) (*Document, error) {
	format, err := Format(name)
	if err != nil {
		return nil, err
	}

	var doc Document
	switch format {
	case "json":
		err = json.Unmarshal(data, &doc)
	case "toml":
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", name, err)
	}
	return &doc, nil
}

// Encode renders doc in the format implied by name and returns the content type.
func Encode(name string, doc *Document) ([]byte, string, error) {
	format, err := Format(name)
	if err != nil {
		return nil, "", err
	}

	var data []byte
	var contentType string
	switch format {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		contentType = "application/json"
	case "toml":
		data, err = toml.Marshal(doc)
		contentType = "application/toml"
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal snapshot %s: %w", name, err)
	}
	return data, contentType, nil
}
