package wirevalue

import "github.com/deferfmt/deferfmt/wire"

// NestedStatement is one entry of a WriteStatements sequence: a reference to
// a registered write statement in a given crate, plus its already-encoded
// argument values in declaration order.
type NestedStatement struct {
	CrateID         wire.CrateID
	WriteStatementID wire.WriteStatementID
	Args            []Value
}

// WriteStatements encodes the nested formatter calls produced by a `write!`
// or `writeln!` body (spec.md §4.E, §"Design Notes" recursive
// WriteStatements). It writes Continue before each nested statement and a
// final End byte; the per-statement CrateId is repeated even when every
// nested statement shares the enclosing crate, preserving the original's
// behavior (SPEC_FULL.md Open Questions).
type WriteStatements struct{ Statements []NestedStatement }

func (v WriteStatements) Hint() wire.TypeHint { return wire.HintWriteStatements }

func (v WriteStatements) writeRaw(e *Encoder) {
	for _, stmt := range v.Statements {
		e.writeByte(wire.StatementWriterContinue)
		e.writeUint16(uint16(stmt.CrateID))
		e.writeUint16(uint16(stmt.WriteStatementID))

		for _, arg := range stmt.Args {
			e.WriteValue(arg)
		}
	}

	e.writeByte(wire.StatementWriterEnd)
}
