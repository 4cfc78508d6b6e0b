// Package decoder implements the consumer-side streaming frame decoder
// (spec.md §4.G): a restartable state machine that turns accumulated bytes
// into a Frame once an entire frame has arrived.
//
// Decode is restartable rather than incrementally stateful: each call
// re-parses from the start of the buffered bytes. On success the consumed
// prefix is dropped; on ErrIncomplete the buffer is left untouched so the
// caller can Feed more bytes and retry. This gives the same observable
// behavior the spec requires (decoding F1 then F1∥F2 eventually yields the
// same Frame decoding F1∥F2 would, and a short prefix reports ErrIncomplete
// rather than a structural error) without threading per-nested-decoder
// resume state through every collection and statement type; see DESIGN.md
// for the tradeoff this simplification makes against the spec's literal
// per-sub-decoder progress description.
//
// Any other error is a structural wire error (spec.md's DecoderError
// taxonomy, in package deferrs) and is not recoverable for the current
// frame: callers should Reset the decoder and resynchronize before Feeding
// further bytes.
package decoder
