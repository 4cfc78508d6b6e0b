package decoder

import (
	"github.com/deferfmt/deferfmt/deferred"
	"github.com/deferfmt/deferfmt/fstring"
	"github.com/deferfmt/deferfmt/wire"
)

// Location identifies the source site a print or write statement was
// registered from (spec.md §3 "Print statement record": "{ location: {
// file, line }, stored_expression }").
type Location struct {
	File string
	Line uint32
}

// StatementShape is everything the decoder needs to turn a decoded
// statement's raw argument Values into a named, renderable expression
// (spec.md §3 "stored_expression = { processed_format_string,
// append_newline, expected_positional_arg_count, expected_named_args:
// [identifier…] }"), plus the registration site it came from. Write
// statements share this same shape (spec.md §3 "Write statement record.
// A stored format expression (same shape)...").
type StatementShape struct {
	Location              Location
	ProcessedFormatString string
	AppendNewline         bool
	PositionalArgCount    int
	NamedArgs             []fstring.Identifier
}

// ArgCount is the total number of self-describing argument Values the
// wire carries for this statement (spec.md §4.G SegmentsDecoder "drive
// until the statement's expected positional+named counts are all
// filled").
func (s StatementShape) ArgCount() int {
	return s.PositionalArgCount + len(s.NamedArgs)
}

// VariantShape is the field layout of one struct or one enum arm
// (spec.md §3 "Struct(Unit | Tuple(n) | Named([field_name…]))"). It
// reuses deferred.TypeVariantKind directly since the decoder builds
// deferred.Value results from it.
type VariantShape struct {
	Kind       deferred.TypeVariantKind
	FieldCount int      // meaningful for VariantTuple
	FieldNames []string // meaningful for VariantNamed, same order as wire Fields
}

// EnumVariantShape is one named arm of an enum TypeShape (spec.md §3
// "Enum([(variant_name, Unit | Tuple(n) | Named([…])) …])").
type EnumVariantShape struct {
	Name  string
	Shape VariantShape
}

// TypeShape describes a registered user-defined type's name and field
// layout, as recorded by the catalog at registration time (spec.md §3
// "Type-structure record. { name, variant }").
type TypeShape struct {
	Name     string
	IsEnum   bool
	Struct   VariantShape // meaningful when !IsEnum
	Variants []EnumVariantShape
}

// ShapeProvider resolves the ids a frame references back to the
// registered shape needed to decode and name its values. Implementations
// typically bridge to a catalog.Registry plus the registration package's
// statement/type records.
type ShapeProvider interface {
	// HasCrate reports whether id names a known crate. Checked before any
	// statement or type structure lookup so UnknownCrate and
	// UnknownStatement/UnknownTypeStructure can be told apart.
	HasCrate(id wire.CrateID) bool

	// PrintStatementShape returns the registered shape for a print
	// statement, or false if the id is not registered under crate.
	PrintStatementShape(crate wire.CrateID, id wire.PrintStatementID) (StatementShape, bool)

	// WriteStatementShape is PrintStatementShape's counterpart for nested
	// write statements found inside a WriteStatements sequence.
	WriteStatementShape(crate wire.CrateID, id wire.WriteStatementID) (StatementShape, bool)

	// TypeStructureShape returns the name and field layout for a
	// registered type.
	TypeStructureShape(crate wire.CrateID, id wire.TypeStructureID) (TypeShape, bool)
}

// splitArgs implements the catalog's argument-splitting rule (grounded on
// the original DecodedValues::push algorithm in
// crates/decoder/src/values.rs): fill positional up to shape's
// PositionalArgCount, then pair every remaining value with the next
// identifier in shape.NamedArgs, in order.
func splitArgs(shape StatementShape, values []deferred.Value) ([]deferred.Value, []deferred.NamedValue) {
	posCount := shape.PositionalArgCount
	if posCount > len(values) {
		posCount = len(values)
	}

	positional := values[:posCount]
	rest := values[posCount:]

	named := make([]deferred.NamedValue, 0, len(rest))
	for i, v := range rest {
		if i >= len(shape.NamedArgs) {
			break
		}
		named = append(named, deferred.NamedValue{Name: shape.NamedArgs[i], Value: v})
	}

	return positional, named
}
