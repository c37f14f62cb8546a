package diffsync

import (
	"context"
	"fmt"
)

// Creator overrides the default create handler for a type.
type Creator interface {
	Create(ctx context.Context, store *Store, ids Identity, attrs Attrs) (Model, error)
}

// Updater overrides the default update handler for a type.
type Updater interface {
	Update(ctx context.Context, store *Store, ids Identity, attrs Attrs) (Model, error)
}

// Deleter overrides the default delete handler for a type.
type Deleter interface {
	Delete(ctx context.Context, store *Store, ids Identity, attrs Attrs) (Model, error)
}

// TypeEntry is the registry record of one model type.
type TypeEntry struct {
	Schema  *Schema
	Factory Factory

	// Handler may implement any subset of Creator, Updater and Deleter.
	// Missing capabilities fall back to the default handlers.
	Handler any
}

// Registry maps type names to their schema, constructor and CRUD overrides.
type Registry struct {
	entries map[string]*TypeEntry
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*TypeEntry)}
}

// Register adds a type. Registering the same type twice is an error.
func (r *Registry) Register(schema *Schema, factory Factory) error {
	if schema == nil || schema.Type == "" {
		return fmt.Errorf("register: schema without type")
	}
	if factory == nil {
		return fmt.Errorf("register %s: nil factory", schema.Type)
	}
	if _, exists := r.entries[schema.Type]; exists {
		return fmt.Errorf("register %s: type already registered", schema.Type)
	}
	r.entries[schema.Type] = &TypeEntry{Schema: schema, Factory: factory}
	r.order = append(r.order, schema.Type)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(schema *Schema, factory Factory) {
	if err := r.Register(schema, factory); err != nil {
		panic(err)
	}
}

// SetHandler installs a CRUD override for a registered type.
func (r *Registry) SetHandler(typ string, handler any) error {
	entry, ok := r.entries[typ]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownObjectType, typ)
	}
	entry.Handler = handler
	return nil
}

// Lookup returns the entry for typ.
func (r *Registry) Lookup(typ string) (*TypeEntry, bool) {
	if r == nil {
		return nil, false
	}
	entry, ok := r.entries[typ]
	return entry, ok
}

// Types returns registered type names in registration order.
func (r *Registry) Types() []string {
	return append([]string(nil), r.order...)
}
