// Package catalog implements the per-crate, append-only statement and
// type-shape store (spec.md §3 "Statement catalog", §4.F). Each crate owns
// three content-addressed tables — print statements, write statements, and
// type structures — keyed by a dense, never-recycled id and deduplicated by
// a 64-bit content hash with linear rescan on collision.
//
// Registry maps crate names to a CrateID and opens each crate's Store
// lazily via a pluggable StoreOpener, the way the original resolves a
// per-project state directory on first use (original_source's
// crates/db/src/state_dir.rs) without this package depending on any
// particular file-system layout.
package catalog
