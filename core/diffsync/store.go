package diffsync

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Populator fills a Store before diffing. Implementations may perform any I/O
// but must leave the store without dangling child ids.
type Populator interface {
	Populate(ctx context.Context, store *Store) error
}

// Store is an in-memory, type-partitioned collection of models.
// It is created empty, populated once, and discarded after one reconciliation.
type Store struct {
	name     string
	topLevel []string
	registry *Registry
	objects  map[string]map[string]Model
}

// NewStore creates an empty store. topLevel lists the types diffing starts
// from, in order.
func NewStore(name string, registry *Registry, topLevel ...string) *Store {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Store{
		name:     name,
		topLevel: topLevel,
		registry: registry,
		objects:  make(map[string]map[string]Model),
	}
}

// Name returns the store name used in logs and rendered output.
func (s *Store) Name() string {
	return s.name
}

// TopLevel returns the declared top-level types.
func (s *Store) TopLevel() []string {
	return s.topLevel
}

// Registry returns the type registry of the store.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Add stores m. It fails with ErrDuplicateObject if the (type, unique id) pair
// is already present.
func (s *Store) Add(m Model) error {
	typ := m.Schema().Type
	id := UniqueID(m)

	byID, ok := s.objects[typ]
	if !ok {
		byID = make(map[string]Model)
		s.objects[typ] = byID
	}
	if _, exists := byID[id]; exists {
		return fmt.Errorf("%w: %s %q in %s", ErrDuplicateObject, typ, id, s.name)
	}
	byID[id] = m
	return nil
}

// AddChild stores child and records its unique id on parent.
// The parent must declare a relation to the child type and implement ChildLinker.
func (s *Store) AddChild(parent, child Model) error {
	childType := child.Schema().Type
	field, ok := parent.Schema().ChildField(childType)
	if !ok {
		return fmt.Errorf("%s does not declare children of type %s", parent.Schema().Type, childType)
	}
	linker, ok := parent.(ChildLinker)
	if !ok {
		return fmt.Errorf("%s cannot link children", parent.Schema().Type)
	}
	if err := s.Add(child); err != nil {
		return err
	}
	linker.AddChildID(field, UniqueID(child))
	return nil
}

// Get returns the model of typ identified by ids.
func (s *Store) Get(typ string, ids Identity) (Model, error) {
	return s.GetByID(typ, ids.String())
}

// GetByID returns the model of typ with the given unique id.
func (s *Store) GetByID(typ, id string) (Model, error) {
	if m, ok := s.objects[typ][id]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %s %q in %s", ErrObjectNotPresent, typ, id, s.name)
}

// GetAll returns all models of typ sorted by unique id. Unseen types yield an
// empty slice.
func (s *Store) GetAll(typ string) []Model {
	byID := s.objects[typ]
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Model, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}

// GetByIDs resolves a child id list into models, keeping the order of ids and
// skipping ids that are not stored.
func (s *Store) GetByIDs(typ string, ids []string) []Model {
	byID := s.objects[typ]
	out := make([]Model, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Delete removes m. It fails with ErrObjectNotPresent if m is not stored.
func (s *Store) Delete(m Model) error {
	typ := m.Schema().Type
	id := UniqueID(m)
	if _, ok := s.objects[typ][id]; !ok {
		return fmt.Errorf("%w: %s %q in %s", ErrObjectNotPresent, typ, id, s.name)
	}
	delete(s.objects[typ], id)
	return nil
}

// Types returns the sorted names of all types that currently hold objects.
func (s *Store) Types() []string {
	types := make([]string, 0, len(s.objects))
	for typ, byID := range s.objects {
		if len(byID) > 0 {
			types = append(types, typ)
		}
	}
	sort.Strings(types)
	return types
}

// Count returns the number of stored models across all types.
func (s *Store) Count() int {
	n := 0
	for _, byID := range s.objects {
		n += len(byID)
	}
	return n
}

// Validate checks that every child id held by a stored model resolves to a
// stored model of the declared child type.
func (s *Store) Validate() error {
	var errs []error
	for _, typ := range s.Types() {
		for _, m := range s.GetAll(typ) {
			for _, child := range m.Schema().Children {
				for _, id := range m.ChildIDs(child.Field) {
					if _, ok := s.objects[child.Type][id]; !ok {
						errs = append(errs, fmt.Errorf("%w: %s %q -> %s %q", ErrDanglingChild, typ, UniqueID(m), child.Type, id))
					}
				}
			}
		}
	}
	return errors.Join(errs...)
}
