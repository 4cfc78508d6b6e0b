package wirevalue

// Dispatcher is the byte sink a producer writes encoded frames to
// (spec.md §4.I). Write never fails from the caller's perspective: hosted
// implementations may buffer internally, embedded implementations typically
// block until the bytes are transmitted, and any transport-level failure is
// the implementation's concern, not the encoder's.
type Dispatcher interface {
	Write(data []byte)
}
