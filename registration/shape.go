package registration

import "github.com/deferfmt/deferfmt/fstring"

// Location identifies the source site a print or write statement was
// registered from (spec.md §3 "Print statement record": "{ location: {
// file, line }, stored_expression }").
type Location struct {
	File string
	Line uint32
}

// StoredExpression is a processed format string plus the argument shape
// captured at its call site (spec.md §3 "stored_expression = {
// processed_format_string, append_newline, expected_positional_arg_count,
// expected_named_args: [identifier…] }").
type StoredExpression struct {
	ProcessedFormatString string
	AppendNewline         bool
	PositionalArgCount    int
	NamedArgs             []fstring.Identifier
}

// ArgCount is the total number of self-describing argument Values the
// wire carries for this expression (spec.md §4.G SegmentsDecoder "drive
// until the statement's expected positional+named counts are all
// filled").
func (e StoredExpression) ArgCount() int {
	return e.PositionalArgCount + len(e.NamedArgs)
}

// StatementShape is everything the catalog records for a print or write
// statement (spec.md §3 "Print statement record"/"Write statement
// record" — the two share the same stored_expression shape, differing
// only in which catalog table and wire id space they're inserted into).
type StatementShape struct {
	Location   Location
	Expression StoredExpression
}

// VariantKind discriminates a unit, tuple, or named-field struct/enum
// variant (spec.md §3 "Struct(Unit | Tuple(n) | Named([field_name…]))").
type VariantKind uint8

const (
	VariantUnit VariantKind = iota
	VariantTuple
	VariantNamed
)

// Variant is the field shape of one struct or one enum arm.
type Variant struct {
	Kind       VariantKind
	FieldCount int      // meaningful for VariantTuple
	FieldNames []string // meaningful for VariantNamed, same order as wire Fields
}

// EnumVariant is one named arm of an enum TypeShape (spec.md §3
// "Enum([(variant_name, Unit | Tuple(n) | Named([…])) …])").
type EnumVariant struct {
	Name    string
	Variant Variant
}

// TypeShape is everything the catalog records for a registered
// user-defined type (spec.md §3 "Type-structure record. { name, variant
// }"): its name, and either a single Struct variant or a list of named
// Enum variants.
type TypeShape struct {
	Name     string
	IsEnum   bool
	Struct   Variant // meaningful when !IsEnum
	Variants []EnumVariant
}
