package registration

import "github.com/deferfmt/deferfmt/wire"

// Registrar is the call boundary a compile-time derive/format macro
// invokes at the source site where a format statement or user type is
// defined (spec.md §2 data flow: "registration time: source site → catalog
// insert (returns small ID)"). Each call is idempotent: registering the
// same shape under the same crate twice returns the same id, since the
// underlying catalog insert is content-addressed (spec.md §4.F).
type Registrar interface {
	// RegisterPrintStatement records a top-level formatter's argument
	// shape and returns the crate and print-statement ids a producer
	// embeds in every emitted frame.
	RegisterPrintStatement(crateName string, shape StatementShape) (wire.CrateID, wire.PrintStatementID, error)

	// RegisterWriteStatement records a nested write!/writeln! body's
	// argument shape, referenced from inside a WriteStatements value.
	RegisterWriteStatement(crateName string, shape StatementShape) (wire.CrateID, wire.WriteStatementID, error)

	// RegisterTypeStructure records a derived user type's field layout,
	// referenced from inside a TypeStructure value.
	RegisterTypeStructure(crateName string, shape TypeShape) (wire.CrateID, wire.TypeStructureID, error)
}
