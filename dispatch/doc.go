// Package dispatch implements the producer-side global dispatcher/stamper
// contract (spec.md §4.I): a single-writer singleton that serializes one
// statement emission at a time behind a critical section, one-shot
// initialized via compare-and-swap on a three-state atom.
package dispatch
