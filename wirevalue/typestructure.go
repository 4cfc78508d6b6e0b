package wirevalue

import "github.com/deferfmt/deferfmt/wire"

// TypeStructure encodes a registered user-defined type's field values
// (spec.md §4.E). The field names themselves are never transmitted: the
// consumer already has them from the catalog record fetched by CrateID +
// TypeStructureID, in the same order the producer writes Fields here.
//
// VariantIndex is nil for a plain struct and set for an enum, in which case
// it is written first as a usize-width variant index. Unit variants carry no
// Fields; Tuple and Named variants carry their fields in declaration order,
// each written with its own hint+payload since fields may differ in type.
type TypeStructure struct {
	CrateID         wire.CrateID
	TypeStructureID wire.TypeStructureID
	VariantIndex    *uint64
	Fields          []Value
}

func (v TypeStructure) Hint() wire.TypeHint { return wire.HintTypeStructure }

func (v TypeStructure) writeRaw(e *Encoder) {
	e.writeUint16(uint16(v.CrateID))
	e.writeUint16(uint16(v.TypeStructureID))

	if v.VariantIndex != nil {
		e.writeUsize(*v.VariantIndex)
	}

	for _, field := range v.Fields {
		e.WriteValue(field)
	}
}
