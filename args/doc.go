// Package args resolves the argument references inside a parsed format
// string (package fstring) against the arguments actually provided for a
// statement.
//
// Two resolvers exist, matching the two times a statement's arguments are
// seen:
//
//   - Static: at registration time, when a print/write statement is added
//     to the catalog. It validates every reference, disambiguates bare
//     `{}` references into sequential indices, folds duplicate-valued
//     arguments into one another (compaction), and optionally captures a
//     value for a named reference that wasn't explicitly provided.
//   - Dynamic: at decode time, when only argument counts (not values) are
//     known from the wire. It checks the counts are consistent with the
//     format string without touching identities or compacting anything.
package args
