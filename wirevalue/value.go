package wirevalue

import "github.com/deferfmt/deferfmt/wire"

// Value is the sealed polymorphic contract every encodable value implements
// (spec.md §4.E). Hint reports the discriminant the decoder will see;
// writeRaw writes only the payload, never the hint byte, so that containers
// can omit a redundant per-element hint when it is implied by the container
// (monomorphic List).
//
// writeRaw is unexported: every concrete Value lives in this package, and
// callers always go through Encoder.WriteValue or a container's own
// encoding, never by invoking writeRaw directly.
type Value interface {
	Hint() wire.TypeHint
	writeRaw(e *Encoder)
}
