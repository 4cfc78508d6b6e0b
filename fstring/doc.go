// Package fstring parses the deferred format-string mini-language used by
// print and write statements: literal text interleaved with `{...}`
// argument segments, `{{`/`}}` brace escapes, and a Rust-`format!`-flavored
// options grammar (fill+align, sign, alternate form, zero padding, width,
// precision, format trait).
//
// Parsing never allocates per character: it walks the source string with
// a rune cursor that tracks byte offsets, the same approach the
// original implementation takes with `char_indices`.
package fstring
