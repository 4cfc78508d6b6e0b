package wirevalue

import "github.com/deferfmt/deferfmt/wire"

// List encodes a homogeneous sequence: a usize length, then, only if the
// list is non-empty, one leading type hint taken from the first element,
// then each element's raw payload with no further hints (spec.md §4.E).
//
// The caller is responsible for only constructing a List from elements that
// share a single Hint(); mixed hints silently lose information on the wire
// and should use DynList instead.
type List struct{ Elements []Value }

func (v List) Hint() wire.TypeHint { return wire.HintList }

func (v List) writeRaw(e *Encoder) {
	e.writeUsize(uint64(len(v.Elements)))

	if len(v.Elements) == 0 {
		return
	}

	e.writeByte(byte(v.Elements[0].Hint()))
	for _, el := range v.Elements {
		el.writeRaw(e)
	}
}

// DynList encodes a heterogeneous sequence: a usize length, then a
// type_hint+payload pair per element.
type DynList struct{ Elements []Value }

func (v DynList) Hint() wire.TypeHint { return wire.HintDynList }

func (v DynList) writeRaw(e *Encoder) {
	e.writeUsize(uint64(len(v.Elements)))
	for _, el := range v.Elements {
		e.WriteValue(el)
	}
}

// Tuple encodes a fixed-arity heterogeneous sequence: a single length byte,
// then a type_hint+payload pair per element.
type Tuple struct{ Elements []Value }

func (v Tuple) Hint() wire.TypeHint { return wire.HintTuple }

func (v Tuple) writeRaw(e *Encoder) {
	e.writeByte(byte(len(v.Elements)))
	for _, el := range v.Elements {
		e.WriteValue(el)
	}
}
