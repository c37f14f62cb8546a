package models

import (
	"fmt"

	"inventory-sync/core/diffsync"
)

// Site is a location devices are installed at. Devices reference it by name.
type Site struct {
	Name string
}

// NewSite is the diffsync.Factory for sites.
func NewSite(ids diffsync.Identity, attrs diffsync.Attrs) (diffsync.Model, error) {
	if err := checkIdentity(SiteSchema, ids); err != nil {
		return nil, err
	}
	s := &Site{Name: ids[0]}
	if err := s.SetAttrs(attrs); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Site) Schema() *diffsync.Schema    { return SiteSchema }
func (s *Site) Identity() diffsync.Identity { return diffsync.Identity{s.Name} }
func (s *Site) Attrs() diffsync.Attrs       { return diffsync.Attrs{} }
func (s *Site) ChildIDs(string) []string    { return nil }

// SetAttrs accepts only an empty set; sites carry no attributes.
func (s *Site) SetAttrs(attrs diffsync.Attrs) error {
	if len(attrs) > 0 {
		return fmt.Errorf("site %s carries no attributes, got %d", s.Name, len(attrs))
	}
	return nil
}
