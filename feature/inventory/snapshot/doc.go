// Package snapshot reads and writes declarative inventory documents.
//
// A snapshot is a JSON or TOML file (chosen by extension) describing sites,
// devices, interfaces, IP addresses and cables. It is read from the local
// filesystem or from the object storage bucket and turned into a populated
// inventory store. Save writes a store back out, which sync --export uses to
// publish the converged destination for review.
//
// # Usage
//
//	src := snapshot.NewFileAdapter("inventory.toml", logger)
//	store := models.NewStore("desired")
//	if err := src.Populate(ctx, store); err != nil {
//	    return err
//	}
package snapshot
