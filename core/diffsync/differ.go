package diffsync

import (
	"go.uber.org/zap"
)

// Differ computes a Diff between two stores.
type Differ struct {
	logger   *zap.Logger
	ordering map[string]OrderPolicy
}

// Option configures a Differ.
type Option func(*Differ)

// WithLogger sets the logger used for skipped types and unsupported shapes.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Differ) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithOrdering installs an OrderPolicy for sibling groups of typ.
func WithOrdering(typ string, policy OrderPolicy) Option {
	return func(d *Differ) {
		d.ordering[typ] = policy
	}
}

// NewDiffer creates a Differ.
func NewDiffer(opts ...Option) *Differ {
	d := &Differ{
		logger:   zap.NewNop(),
		ordering: make(map[string]OrderPolicy),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Diff compares dst against src. It never mutates either store.
func (d *Differ) Diff(dst, src *Store) *Diff {
	diff := newDiff(d.ordering)
	for _, typ := range d.sharedTopLevel(dst, src) {
		d.diffObjects(diff, src, dst, src.GetAll(typ), dst.GetAll(typ))
	}
	return diff
}

// sharedTopLevel returns the ordered intersection of both top-level lists,
// ordered by dst's list. One-sided types are logged and skipped.
func (d *Differ) sharedTopLevel(dst, src *Store) []string {
	inSrc := make(map[string]struct{}, len(src.TopLevel()))
	for _, typ := range src.TopLevel() {
		inSrc[typ] = struct{}{}
	}
	inDst := make(map[string]struct{}, len(dst.TopLevel()))

	seen := make(map[string]struct{})
	var shared []string
	for _, typ := range dst.TopLevel() {
		inDst[typ] = struct{}{}
		if _, dup := seen[typ]; dup {
			continue
		}
		seen[typ] = struct{}{}
		if _, ok := inSrc[typ]; !ok {
			d.logger.Warn("Skipping top-level type missing in source",
				zap.String("type", typ), zap.String("store", src.Name()))
			continue
		}
		shared = append(shared, typ)
	}
	for _, typ := range src.TopLevel() {
		if _, ok := inDst[typ]; !ok {
			if _, dup := seen[typ]; dup {
				continue
			}
			seen[typ] = struct{}{}
			d.logger.Warn("Skipping top-level type missing in destination",
				zap.String("type", typ), zap.String("store", dst.Name()))
		}
	}
	return shared
}

// Partition splits the unique ids of two same-typed model lists.
type Partition struct {
	// OnlyInSource are create candidates, in source order.
	OnlyInSource []string
	// OnlyInDest are delete candidates, in destination order.
	OnlyInDest []string
	// InBoth are update candidates, in source order.
	InBoth []string
}

// PartitionModels partitions src and dst by unique id. Every id appears in
// exactly one of the three lists.
func PartitionModels(src, dst []Model) Partition {
	inDst := make(map[string]struct{}, len(dst))
	for _, m := range dst {
		inDst[UniqueID(m)] = struct{}{}
	}

	var p Partition
	inSrc := make(map[string]struct{}, len(src))
	for _, m := range src {
		id := UniqueID(m)
		if _, dup := inSrc[id]; dup {
			continue
		}
		inSrc[id] = struct{}{}
		if _, ok := inDst[id]; ok {
			p.InBoth = append(p.InBoth, id)
		} else {
			p.OnlyInSource = append(p.OnlyInSource, id)
		}
	}
	seen := make(map[string]struct{})
	for _, m := range dst {
		id := UniqueID(m)
		if _, ok := inSrc[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		p.OnlyInDest = append(p.OnlyInDest, id)
	}
	return p
}

// diffObjects compares two lists of models of one type and appends the
// resulting elements to into. Lists mixing types are not comparable: a
// warning is logged and nothing is emitted for the branch.
func (d *Differ) diffObjects(into *Diff, src, dst *Store, srcList, dstList []Model) {
	schema, ok := d.commonSchema(srcList, dstList)
	if !ok || schema == nil {
		return
	}

	dictSrc := indexByID(srcList)
	dictDst := indexByID(dstList)
	p := PartitionModels(srcList, dstList)

	emit := func(id string) {
		srcObj, inSrc := dictSrc[id]
		dstObj, inDst := dictDst[id]

		var keys Identity
		if inSrc {
			keys = srcObj.Identity()
		} else {
			keys = dstObj.Identity()
		}

		e := newElement(schema.Type, keys, d.ordering)
		if inSrc {
			e.setSource(srcObj.Attrs())
		}
		if inDst {
			e.setDest(dstObj.Attrs())
		}

		for _, child := range schema.Children {
			var srcChildren, dstChildren []Model
			if inSrc {
				srcChildren = src.GetByIDs(child.Type, srcObj.ChildIDs(child.Field))
			}
			if inDst {
				dstChildren = dst.GetByIDs(child.Type, dstObj.ChildIDs(child.Field))
			}
			d.diffObjects(e.children, src, dst, srcChildren, dstChildren)
		}
		into.add(e)
	}

	// Source order first (creates and updates interleaved as found), then
	// the destination-only leftovers.
	emitted := make(map[string]struct{})
	for _, m := range srcList {
		id := UniqueID(m)
		if _, done := emitted[id]; done {
			continue
		}
		emitted[id] = struct{}{}
		emit(id)
	}
	for _, id := range p.OnlyInDest {
		emit(id)
	}
}

// commonSchema returns the schema shared by every model of both lists.
func (d *Differ) commonSchema(srcList, dstList []Model) (*Schema, bool) {
	var schema *Schema
	for _, list := range [][]Model{srcList, dstList} {
		for _, m := range list {
			s := m.Schema()
			if schema == nil {
				schema = s
				continue
			}
			if s.Type != schema.Type {
				d.logger.Warn("Unsupported comparison: lists mix model types",
					zap.String("expected", schema.Type), zap.String("found", s.Type))
				return nil, false
			}
		}
	}
	return schema, true
}

func indexByID(list []Model) map[string]Model {
	out := make(map[string]Model, len(list))
	for _, m := range list {
		id := UniqueID(m)
		if _, dup := out[id]; !dup {
			out[id] = m
		}
	}
	return out
}
