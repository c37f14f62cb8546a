package diffsync

// Action is the operation the Syncer derives for a DiffElement.
type Action string

const (
	// ActionNone means the element's own attributes match; only descendants may differ.
	ActionNone Action = ""
	// ActionCreate creates the object in the destination.
	ActionCreate Action = "create"
	// ActionUpdate overwrites the destination's attributes with the source's.
	ActionUpdate Action = "update"
	// ActionDelete removes the object from the destination.
	ActionDelete Action = "delete"
)

// DiffElement is the comparison result of one identity.
type DiffElement struct {
	// Type is the model type name.
	Type string

	// Name is the display name (the unique id).
	Name string

	// Keys are the identifier values.
	Keys Identity

	// Source holds the attributes seen in the source store, nil if absent.
	Source Attrs

	// Dest holds the attributes seen in the destination store, nil if absent.
	Dest Attrs

	hasSource bool
	hasDest   bool
	children  *Diff
}

func newElement(typ string, keys Identity, ordering map[string]OrderPolicy) *DiffElement {
	return &DiffElement{
		Type:     typ,
		Name:     keys.String(),
		Keys:     keys,
		children: newDiff(ordering),
	}
}

func (e *DiffElement) setSource(attrs Attrs) {
	e.Source = attrs.Clone()
	if e.Source == nil {
		e.Source = Attrs{}
	}
	e.hasSource = true
}

func (e *DiffElement) setDest(attrs Attrs) {
	e.Dest = attrs.Clone()
	if e.Dest == nil {
		e.Dest = Attrs{}
	}
	e.hasDest = true
}

// HasSource reports whether the identity exists in the source store.
func (e *DiffElement) HasSource() bool {
	return e.hasSource
}

// HasDest reports whether the identity exists in the destination store.
func (e *DiffElement) HasDest() bool {
	return e.hasDest
}

// Action derives the operation from the attribute presence pattern.
func (e *DiffElement) Action() Action {
	switch {
	case !e.hasSource && !e.hasDest:
		return ActionNone
	case !e.hasSource:
		return ActionDelete
	case !e.hasDest:
		return ActionCreate
	case !e.Source.Equal(e.Dest):
		return ActionUpdate
	default:
		return ActionNone
	}
}

// HasOwnDiffs reports whether this element's attribute sets differ, ignoring children.
func (e *DiffElement) HasOwnDiffs() bool {
	return e.Action() != ActionNone
}

// HasDiffs reports whether this element or any descendant differs.
func (e *DiffElement) HasDiffs() bool {
	return e.HasOwnDiffs() || e.children.HasDiffs()
}

// ChangedAttrs returns the names of attributes whose values differ. It is
// empty unless both sides are present.
func (e *DiffElement) ChangedAttrs() []string {
	if !e.hasSource || !e.hasDest {
		return nil
	}
	return e.Source.Changed(e.Dest)
}

// Children returns the nested diff of this element's children.
func (e *DiffElement) Children() *Diff {
	return e.children
}

// Diff is a type-then-name indexed collection of DiffElements. Types keep the
// order in which they were first added.
type Diff struct {
	groups   []string
	elements map[string][]*DiffElement
	index    map[string]map[string]*DiffElement
	ordering map[string]OrderPolicy
}

func newDiff(ordering map[string]OrderPolicy) *Diff {
	return &Diff{
		elements: make(map[string][]*DiffElement),
		index:    make(map[string]map[string]*DiffElement),
		ordering: ordering,
	}
}

func (d *Diff) add(e *DiffElement) {
	if _, ok := d.index[e.Type]; !ok {
		d.groups = append(d.groups, e.Type)
		d.index[e.Type] = make(map[string]*DiffElement)
	}
	d.index[e.Type][e.Name] = e
	d.elements[e.Type] = append(d.elements[e.Type], e)
}

// Groups returns the types present, in build order.
func (d *Diff) Groups() []string {
	return d.groups
}

// Group returns the elements of typ in emission order. A registered
// OrderPolicy for typ decides that order; otherwise build order is kept.
func (d *Diff) Group(typ string) []*DiffElement {
	elements := d.elements[typ]
	if policy, ok := d.ordering[typ]; ok && policy != nil {
		return policy.Order(elements)
	}
	return elements
}

// Get returns the element of typ named name.
func (d *Diff) Get(typ, name string) (*DiffElement, bool) {
	e, ok := d.index[typ][name]
	return e, ok
}

// Elements returns all elements across groups in emission order.
func (d *Diff) Elements() []*DiffElement {
	var out []*DiffElement
	for _, typ := range d.groups {
		out = append(out, d.Group(typ)...)
	}
	return out
}

// Len returns the number of elements directly held by d.
func (d *Diff) Len() int {
	n := 0
	for _, elements := range d.elements {
		n += len(elements)
	}
	return n
}

// HasDiffs reports whether any element in the tree differs.
func (d *Diff) HasDiffs() bool {
	for _, elements := range d.elements {
		for _, e := range elements {
			if e.HasDiffs() {
				return true
			}
		}
	}
	return false
}

// Summary counts elements of the whole tree by derived action.
type Summary struct {
	Create   int `json:"create"`
	Update   int `json:"update"`
	Delete   int `json:"delete"`
	NoChange int `json:"no_change"`
}

// Summary walks the tree and counts elements by action.
func (d *Diff) Summary() Summary {
	var s Summary
	d.Walk(func(e *DiffElement, _ int) {
		switch e.Action() {
		case ActionCreate:
			s.Create++
		case ActionUpdate:
			s.Update++
		case ActionDelete:
			s.Delete++
		default:
			s.NoChange++
		}
	})
	return s
}

// Walk visits every element depth-first, parent before children, in emission
// order. depth is 0 for top-level elements.
func (d *Diff) Walk(fn func(e *DiffElement, depth int)) {
	d.walk(fn, 0)
}

func (d *Diff) walk(fn func(*DiffElement, int), depth int) {
	for _, e := range d.Elements() {
		fn(e, depth)
		e.children.walk(fn, depth+1)
	}
}
