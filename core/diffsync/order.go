package diffsync

// OrderPolicy decides the emission order of a sibling group of one type.
type OrderPolicy interface {
	Order(elements []*DiffElement) []*DiffElement
}

// OrderFunc adapts a function to OrderPolicy.
type OrderFunc func(elements []*DiffElement) []*DiffElement

// Order calls f.
func (f OrderFunc) Order(elements []*DiffElement) []*DiffElement {
	return f(elements)
}

// Class is the dependency class of an element within a bundle-aware group.
type Class int

const (
	// ClassPlain elements neither aggregate nor belong to a bundle.
	ClassPlain Class = iota
	// ClassBundle elements aggregate members (e.g., a LAG interface).
	ClassBundle
	// ClassMember elements belong to a bundle.
	ClassMember
)

// BundleOrder orders a sibling group so that bundles are created or updated
// before their members, and all deletions follow all creations and updates:
//
//	plain.create, plain.update, bundle.create, bundle.update,
//	member.create, member.update, plain.delete, bundle.delete, member.delete
//
// Classification reads the source attributes for create and update and the
// destination attributes for delete. Elements without an action of their own
// are placed with the updates. Order within a bucket is preserved.
type BundleOrder struct {
	// Classify returns the class of an element. Values other than ClassPlain,
	// ClassBundle and ClassMember are treated as ClassPlain.
	Classify func(attrs Attrs) Class
}

// Order implements OrderPolicy.
func (b BundleOrder) Order(elements []*DiffElement) []*DiffElement {
	const (
		create = iota
		update
		remove
	)
	var buckets [3][3][]*DiffElement

	for _, e := range elements {
		kind, attrs := update, e.Source
		switch e.Action() {
		case ActionCreate:
			kind = create
		case ActionDelete:
			kind, attrs = remove, e.Dest
		}

		class := ClassPlain
		if b.Classify != nil {
			class = b.Classify(attrs)
		}
		if class < ClassPlain || class > ClassMember {
			class = ClassPlain
		}
		buckets[class][kind] = append(buckets[class][kind], e)
	}

	out := make([]*DiffElement, 0, len(elements))
	for _, class := range []Class{ClassPlain, ClassBundle, ClassMember} {
		out = append(out, buckets[class][create]...)
		out = append(out, buckets[class][update]...)
	}
	for _, class := range []Class{ClassPlain, ClassBundle, ClassMember} {
		out = append(out, buckets[class][remove]...)
	}
	return out
}

// LagClassifier classifies by two boolean attributes. bundleAttr wins when
// both are set.
func LagClassifier(bundleAttr, memberAttr string) func(Attrs) Class {
	return func(attrs Attrs) Class {
		if v, _ := attrs[bundleAttr].(bool); v {
			return ClassBundle
		}
		if v, _ := attrs[memberAttr].(bool); v {
			return ClassMember
		}
		return ClassPlain
	}
}
