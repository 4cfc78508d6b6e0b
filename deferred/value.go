package deferred

import "math/big"

// ValueKind discriminates the variants of Value. It mirrors wire.TypeHint's
// primitive/collection split but adds the Type variant, which never crosses
// the wire as its own hint (it renders a decoded TypeStructure instance).
type ValueKind uint8

const (
	KindBool ValueKind = iota
	KindUsize
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindIsize
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindF32
	KindF64
	KindChar
	KindString
	KindList
	KindTuple
	KindType
	KindWriteStatements
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindUsize:
		return "usize"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindU128:
		return "u128"
	case KindIsize:
		return "isize"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindI128:
		return "i128"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindType:
		return "type"
	case KindWriteStatements:
		return "write_statements"
	default:
		return "unknown"
	}
}

// valueClass groups kinds the way pipeline_length treats them: numerics pad
// right by default and skip width when zero-padded; structures never pad;
// everything else pads left and always applies width/precision.
type valueClass uint8

const (
	classMisc valueClass = iota
	classNumeric
	classStructure
)

func (k ValueKind) class() valueClass {
	switch k {
	case KindBool, KindChar, KindString:
		return classMisc
	case KindList, KindTuple, KindType, KindWriteStatements:
		return classStructure
	default:
		return classNumeric
	}
}

func (k ValueKind) isInteger() bool {
	switch k {
	case KindUsize, KindU8, KindU16, KindU32, KindU64, KindU128,
		KindIsize, KindI8, KindI16, KindI32, KindI64, KindI128:
		return true
	default:
		return false
	}
}

func (k ValueKind) isFloat() bool {
	return k == KindF32 || k == KindF64
}

func (k ValueKind) isSigned() bool {
	switch k {
	case KindIsize, KindI8, KindI16, KindI32, KindI64, KindI128:
		return true
	default:
		return false
	}
}

// TypeValue is a decoded TypeStructure instance: a named struct or enum
// variant, rendered by the Debug family of format traits.
type TypeValue struct {
	Name    string
	Variant TypeVariant
}

// TypeVariantKind discriminates a unit, tuple, or named-field struct/enum
// variant.
type TypeVariantKind uint8

const (
	VariantUnit TypeVariantKind = iota
	VariantTuple
	VariantNamed
)

// TypeVariant is the shape of one struct or enum variant. EnumVariant is
// set (HasEnumVariant true) when Name identifies the enum and EnumVariant
// identifies the chosen arm; as in the original, the debug renderer prints
// EnumVariant in place of Name for such values.
type TypeVariant struct {
	Kind           TypeVariantKind
	HasEnumVariant bool
	EnumVariant    string
	Tuple          []Value
	Named          []NamedField
}

// NamedField is one field of a named-field struct or enum variant.
type NamedField struct {
	Name  string
	Value Value
}

// NestedWrite is one decoded entry of a WriteStatements sequence: a
// registered write!/writeln! body's stored format string, already split
// into the positional and named values its own stored expression expects
// (spec.md §3 "WriteStatements([ { expression, append_newline,
// decoded_values }… ])").
type NestedWrite struct {
	ProcessedFormatString string
	AppendNewline         bool
	Positional            []Value
	Named                 []NamedValue
}

// Value is the closed set of things a deferred format argument can
// evaluate to: the same primitives and collections wirevalue can encode,
// plus a decoded Type instance for values reconstructed from a
// TypeStructure on the wire, and a Statements sequence for a decoded
// WriteStatements value.
type Value struct {
	Kind       ValueKind
	Bool       bool
	Int        *big.Int
	Float      float64
	Char       rune
	Str        string
	List       []Value
	Type       *TypeValue
	Statements []NestedWrite
}

func NewBool(v bool) Value { return Value{Kind: KindBool, Bool: v} }

func NewUsize(v uint64) Value { return Value{Kind: KindUsize, Int: new(big.Int).SetUint64(v)} }
func NewU8(v uint8) Value     { return Value{Kind: KindU8, Int: new(big.Int).SetUint64(uint64(v))} }
func NewU16(v uint16) Value   { return Value{Kind: KindU16, Int: new(big.Int).SetUint64(uint64(v))} }
func NewU32(v uint32) Value   { return Value{Kind: KindU32, Int: new(big.Int).SetUint64(uint64(v))} }
func NewU64(v uint64) Value   { return Value{Kind: KindU64, Int: new(big.Int).SetUint64(v)} }
func NewU128(v *big.Int) Value {
	return Value{Kind: KindU128, Int: new(big.Int).Set(v)}
}

func NewIsize(v int64) Value { return Value{Kind: KindIsize, Int: big.NewInt(v)} }
func NewI8(v int8) Value     { return Value{Kind: KindI8, Int: big.NewInt(int64(v))} }
func NewI16(v int16) Value   { return Value{Kind: KindI16, Int: big.NewInt(int64(v))} }
func NewI32(v int32) Value   { return Value{Kind: KindI32, Int: big.NewInt(int64(v))} }
func NewI64(v int64) Value   { return Value{Kind: KindI64, Int: big.NewInt(v)} }
func NewI128(v *big.Int) Value {
	return Value{Kind: KindI128, Int: new(big.Int).Set(v)}
}

func NewF32(v float32) Value { return Value{Kind: KindF32, Float: float64(v)} }
func NewF64(v float64) Value { return Value{Kind: KindF64, Float: v} }

func NewChar(r rune) Value { return Value{Kind: KindChar, Char: r} }
func NewString(s string) Value { return Value{Kind: KindString, Str: s} }

func NewList(elements []Value) Value { return Value{Kind: KindList, List: elements} }
func NewTuple(elements []Value) Value { return Value{Kind: KindTuple, List: elements} }

func NewStructType(name string, variant TypeVariant) Value {
	return Value{Kind: KindType, Type: &TypeValue{Name: name, Variant: variant}}
}

// NewWriteStatements builds a decoded value for a WriteStatements sequence
// (spec.md §3), each entry already resolved to its registered format
// string and split into positional/named values.
func NewWriteStatements(entries []NestedWrite) Value {
	return Value{Kind: KindWriteStatements, Statements: entries}
}

