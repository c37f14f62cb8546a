package diffsync

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// idSeparator joins identifier values into a unique id.
const idSeparator = "__"

// ChildSpec declares one child relation: the child model type and the field on
// the parent that holds the ordered list of child unique ids.
type ChildSpec struct {
	Type  string
	Field string
}

// Schema describes a model type.
type Schema struct {
	// Type is the model type name (e.g., "device", "interface").
	Type string

	// Identifiers are the ordered identifier field names.
	Identifiers []string

	// Attributes are the diffable, non-identifier field names.
	Attributes []string

	// Children are the declared child relations, in diff order.
	Children []ChildSpec
}

// ChildField returns the field on this type holding ids of childType.
func (s *Schema) ChildField(childType string) (string, bool) {
	for _, c := range s.Children {
		if c.Type == childType {
			return c.Field, true
		}
	}
	return "", false
}

// Identity is the ordered tuple of identifier values of a model.
type Identity []string

// String returns the unique id formed by the identifier values.
func (i Identity) String() string {
	return strings.Join(i, idSeparator)
}

// Attrs is the diffable attribute set of a model, keyed by attribute name.
// Values are scalars (string, bool, numbers) or string slices.
type Attrs map[string]any

// Equal reports whether both attribute sets hold the same names and values.
func (a Attrs) Equal(b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !valueEqual(av, bv) {
			return false
		}
	}
	return true
}

// Changed returns the sorted names whose values differ between a and b,
// including names present on one side only.
func (a Attrs) Changed(b Attrs) []string {
	var names []string
	for k, av := range a {
		if bv, ok := b[k]; !ok || !valueEqual(av, bv) {
			names = append(names, k)
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy of the attribute set.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case string, bool, int, int64, int32, uint, uint64, float64, float32:
		return a == b
	case []string:
		bv, ok := b.([]string)
		return ok && slices.Equal(av, bv)
	default:
		return fmt.Sprintf("%#v", a) == fmt.Sprintf("%#v", b)
	}
}

// Model is one typed, identity-bearing domain entity.
// Concrete types expose their attribute struct through Attrs so the engine
// never needs reflection.
type Model interface {
	// Schema returns the type description shared by all instances of the type.
	Schema() *Schema

	// Identity returns the identifier values, aligned with Schema().Identifiers.
	Identity() Identity

	// Attrs returns the current diffable attribute set.
	Attrs() Attrs

	// ChildIDs returns the ordered child unique ids held in field.
	ChildIDs(field string) []string
}

// AttrSetter is implemented by models whose attributes can be overwritten in
// place. The default update handler requires it.
type AttrSetter interface {
	SetAttrs(attrs Attrs) error
}

// ChildLinker is implemented by models that keep child id lists the engine can
// maintain when children are created or deleted.
type ChildLinker interface {
	AddChildID(field, id string)
	RemoveChildID(field, id string)
}

// Factory constructs a model of one type from identifier values and attributes.
type Factory func(ids Identity, attrs Attrs) (Model, error)

// UniqueID returns the unique id of m within its type.
func UniqueID(m Model) string {
	return m.Identity().String()
}

// AppendID appends id to ids unless already present.
func AppendID(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

// RemoveID returns ids without id.
func RemoveID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(v string) bool { return v == id })
}
