// Package wire holds the wire-level vocabulary shared by the encoder,
// catalog, and decoder: small-integer identifiers, the 1-byte frame header,
// the pointer-width and level enums, and the closed type-hint enumeration.
//
// Everything in this package is transmitted big-endian (spec.md §3), and
// nothing here allocates, mirroring the teacher's section package (a fixed-size packed
// header struct with Parse/Bytes pairs).
package wire

// CrateID identifies a source crate within the catalog. Dense, allocated by
// the catalog on first registration, never recycled.
type CrateID uint16

// PrintStatementID identifies a registered print statement within a crate.
type PrintStatementID uint16

// WriteStatementID identifies a registered write statement (a `write!`/
// `writeln!` body) within a crate.
type WriteStatementID uint16

// TypeStructureID identifies a registered user-defined type shape within a
// crate.
type TypeStructureID uint16
