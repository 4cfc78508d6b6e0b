package wire

// TypeHint is the 1-byte discriminant prefixing every encoded value on the
// wire. It is a closed enumeration: the decoder must reject any byte that
// doesn't map to one of the variants below (spec.md §3).
type TypeHint uint8

const (
	// Primitives, 0-34.
	HintBool TypeHint = 0

	HintUsize TypeHint = 10
	HintU8    TypeHint = 11
	HintU16   TypeHint = 12
	HintU32   TypeHint = 13
	HintU64   TypeHint = 14
	HintU128  TypeHint = 15

	HintIsize TypeHint = 20
	HintI8    TypeHint = 21
	HintI16   TypeHint = 22
	HintI32   TypeHint = 23
	HintI64   TypeHint = 24
	HintI128  TypeHint = 25

	HintF32 TypeHint = 33
	HintF64 TypeHint = 34

	// Collections, 100-104.
	HintTuple       TypeHint = 100
	HintChar        TypeHint = 101
	HintStringSlice TypeHint = 102
	HintList        TypeHint = 103
	HintDynList     TypeHint = 104

	// Meta, 201-202.
	HintWriteStatements TypeHint = 201
	HintTypeStructure   TypeHint = 202
)

// ParseTypeHint validates a raw byte against the closed set of hints.
func ParseTypeHint(b byte) (TypeHint, bool) {
	h := TypeHint(b)
	if !h.Valid() {
		return 0, false
	}

	return h, true
}

// Valid reports whether h is one of the defined variants.
func (h TypeHint) Valid() bool {
	switch h {
	case HintBool,
		HintUsize, HintU8, HintU16, HintU32, HintU64, HintU128,
		HintIsize, HintI8, HintI16, HintI32, HintI64, HintI128,
		HintF32, HintF64,
		HintTuple, HintChar, HintStringSlice, HintList, HintDynList,
		HintWriteStatements, HintTypeStructure:
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether h falls in the 0-34 primitive range.
func (h TypeHint) IsPrimitive() bool {
	return h.Valid() && h <= HintF64
}

// IsCollection reports whether h falls in the 100-104 collection range.
func (h TypeHint) IsCollection() bool {
	return h >= HintTuple && h <= HintDynList
}

// IsMeta reports whether h is one of the 201/202 meta markers.
func (h TypeHint) IsMeta() bool {
	return h == HintWriteStatements || h == HintTypeStructure
}

func (h TypeHint) String() string {
	switch h {
	case HintBool:
		return "Bool"
	case HintUsize:
		return "Usize"
	case HintU8:
		return "U8"
	case HintU16:
		return "U16"
	case HintU32:
		return "U32"
	case HintU64:
		return "U64"
	case HintU128:
		return "U128"
	case HintIsize:
		return "Isize"
	case HintI8:
		return "I8"
	case HintI16:
		return "I16"
	case HintI32:
		return "I32"
	case HintI64:
		return "I64"
	case HintI128:
		return "I128"
	case HintF32:
		return "F32"
	case HintF64:
		return "F64"
	case HintTuple:
		return "Tuple"
	case HintChar:
		return "Char"
	case HintStringSlice:
		return "StringSlice"
	case HintList:
		return "List"
	case HintDynList:
		return "DynList"
	case HintWriteStatements:
		return "WriteStatements"
	case HintTypeStructure:
		return "TypeStructure"
	default:
		return "Unknown"
	}
}
