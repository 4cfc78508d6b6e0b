package dispatch

// Stamper supplies a frame's optional 64-bit stamp (typically a clock
// reading). Stamp is invoked at most once per frame and must be pure: the
// dispatcher calls it exactly once inside the critical section and writes
// the result verbatim (spec.md §4.I).
type Stamper interface {
	Stamp() uint64
}
