// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package tabhist memoizes table-producing functions through files on disk.
// Each configuration describes one lineage: a directory plus a file-name
// pattern with a timestamp placeholder. The directory listing is the index;
// there is no manifest, no in-memory state, and nothing is ever deleted by
// the core.
//
//	store, err := tabhist.NewStore(tabhist.Config{
//		Dir:     "/tmp/cache",
//		Pattern: "query_{timestamp}.csv",
//		Expire:  time.Hour,
//	})
//	...
//	fn := tabhist.Wrap(runBigQuery, store)
//	t, err := fn.Invoke(ctx)
//
// There is no cross-process locking: two concurrent callers can both see a
// stale cache, both recompute, and both save, with the later write becoming
// the latest version. That is an accepted property of the design, not a bug.
package tabhist
