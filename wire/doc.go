// Package wire defines the physical, byte-level vocabulary of a deferred
// log frame: the 1-byte header, the level and pointer-width enums packed
// into it, the 16-bit catalog identifiers, and the closed type-hint
// enumeration that prefixes every encoded value.
//
// # Frame layout
//
//	header [stamp] crate_id print_id content*
//
//	header   1 byte,  see Header
//	stamp    8 bytes, big-endian, present iff Header.HasStamp()
//	crate_id 2 bytes, big-endian CrateID
//	print_id 2 bytes, big-endian PrintStatementID
//
// # Header bits
//
//	bit 0, 1   pointer width: 00=16-bit, 01=32-bit, 11=64-bit
//	bits 4-6   level: one of 5 non-zero combinations, or all-zero for none
//	bit 7      stamp presence
//
// Everything in this package is a plain value type; nothing here owns a
// buffer or performs I/O.
package wire
