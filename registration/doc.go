// Package registration describes the shape-extraction contract the
// compile-time derive/format macros call into (spec.md §1, §2 component H).
// The macros themselves — parsing a format string or deriving a user type
// at compile time and emitting the call that registers its shape — are
// explicitly out of scope (spec.md §1's "treated as external collaborators
// and specified only by interface"); this package only fixes the boundary:
// what a registration call hands over, and what it gets back.
//
// Registrar is that boundary. CatalogRegistrar is the one concrete
// implementation: it turns a shape into catalog content bytes (so
// content-addressed deduplication applies to shapes exactly as it does to
// any other record) and, on the consumer side, implements
// decoder.ShapeProvider by reading those same bytes back.
package registration
