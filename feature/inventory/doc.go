// Package inventory reconciles a destination network inventory with a
// desired source inventory.
//
// The Service populates both stores concurrently, diffs them with the
// inventory ordering rules and, once confirmed, syncs the destination.
// Destinations that can save themselves (snapshot files) are written back
// after the sync; database destinations write row by row during it.
//
// # Endpoints
//
//   - GET /inventory/diff: pending changes as a JSON report.
//   - POST /inventory/sync: apply the changes (dry_run=true to only plan).
//
// # Usage
//
//	svc := inventory.NewService(
//	    snapshot.NewFileAdapter("inventory.json", logger),
//	    database.NewAdapter(db, logger),
//	    logger,
//	)
//	plan, err := svc.Plan(ctx)
//	out, err := svc.Apply(ctx, plan, inventory.ApplyOptions{Confirmed: true})
package inventory
