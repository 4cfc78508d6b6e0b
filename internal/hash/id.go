// Package hash computes the content hash used to key statement catalog records.
package hash

import "github.com/cespare/xxhash/v2"

// Content computes the xxHash64 of the given serialized record content.
//
// The catalog uses this as the first stage of its insert/lookup path: records
// with equal hashes are compared by content before an id is reused or
// allocated, so collisions never alias distinct content (spec.md §3
// Invariants).
func Content(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// String computes the xxHash64 of a string without an intermediate byte-slice
// allocation, used for hashing crate names in the main catalog.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}
