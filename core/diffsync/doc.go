// Package diffsync provides a generic state reconciliation engine for
// hierarchical, identity-bearing data sets.
//
// Two Stores are populated independently by adapters (a "source" and a
// "destination"). The engine compares them type by type, starting from the
// top-level types both stores declare, and produces a Diff tree. The Diff can
// be rendered for review or handed to a Syncer, which dispatches create,
// update and delete operations against the destination so that it converges
// toward the source.
//
// # Architecture
//
// 1. Model: a typed record with ordered identifier fields, a diffable attribute
//    set and child relations held by id only. Models never reference each other
//    directly, so the Store is the single owner of every instance.
//
// 2. Store: an in-memory arena keyed by type and unique id. It carries the
//    Registry that knows how to construct each type and which CRUD overrides an
//    adapter installed for it.
//
// 3. Differ: partitions instances by unique id into create, delete and update
//    candidates and recurses through declared child relations.
//
// 4. Syncer: walks the Diff depth-first, parent before children, and hands every
//    element with a difference to the Dispatcher. Sibling groups can be ordered
//    by an OrderPolicy (see BundleOrder for link-aggregation aware ordering).
//
// # Error policy
//
// Identity violations (ErrDuplicateObject, ErrObjectNotPresent) and unknown
// types (ErrUnknownObjectType) abort a sync. A handler that fails with a
// *CrudError is recorded in the Report and the sync carries on with the rest of
// the tree, including the children of the failed element.
//
// # Usage Example
//
//	src := diffsync.NewStore("source", registry, "site")
//	dst := diffsync.NewStore("destination", registry, "site")
//	// ... adapters populate src and dst ...
//
//	differ := diffsync.NewDiffer(diffsync.WithLogger(log))
//	diff := differ.Diff(dst, src)
//	_ = diffsync.Render(os.Stdout, diff, diffsync.RenderOptions{})
//
//	report, err := diffsync.NewSyncer(differ, log).SyncDiff(ctx, dst, diff)
//
// A Store has no internal locking: exactly one reconciliation pass owns a pair
// of stores at a time.
package diffsync
