// Package wirevalue implements the producer-side WriteValue encoding
// contract (spec.md §4.E): a closed set of value types that each report a
// wire.TypeHint and know how to write their own big-endian payload.
//
// Every multi-byte integer and float is written big-endian at its natural
// width; usize-width fields (string/List/DynList lengths, enum
// variant indices) are sized by the Encoder's configured wire.PointerWidth,
// mirroring the header's pointer-width bits. Tuple and Char lengths are
// always a single byte regardless of pointer width.
//
// Encoder follows the teacher's pooled-buffer convention (encoding.TagEncoder
// backed by internal/pool): a frame buffer is checked out, written to
// directly, handed to a Dispatcher, then released.
package wirevalue
