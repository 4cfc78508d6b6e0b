package decoder

import (
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/deferfmt/deferfmt/deferred"
	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/wire"
)

// toInt converts a wire-sized length or index to a platform int, reporting
// overflow rather than silently truncating (spec.md's LengthOverflow /
// VariantIndexOverflow).
func toInt(v uint64) (int, bool) {
	if v > uint64(math.MaxInt) {
		return 0, false
	}
	return int(v), true
}

// decodeValue reads one hint byte and then the value it introduces,
// reconstructing a named deferred.Value directly (spec.md §3 "Decoded
// value union"; spec.md §4.E default encoding).
func decodeValue(c *cursor, width wire.PointerWidth, shapes ShapeProvider) (deferred.Value, error) {
	hintByte, err := c.readByte()
	if err != nil {
		return deferred.Value{}, err
	}

	hint, ok := wire.ParseTypeHint(hintByte)
	if !ok {
		return deferred.Value{}, deferrs.ErrUnknownTypeHint
	}

	return decodeRaw(c, width, shapes, hint)
}

// decodeRaw reads the raw payload for an already-known hint, used both by
// decodeValue and by List's monomorphic per-element decoding (which omits
// the per-element hint byte).
func decodeRaw(c *cursor, width wire.PointerWidth, shapes ShapeProvider, hint wire.TypeHint) (deferred.Value, error) {
	switch hint {
	case wire.HintBool:
		b, err := c.readByte()
		if err != nil {
			return deferred.Value{}, err
		}
		if b > 1 {
			return deferred.Value{}, deferrs.ErrInvalidValueBytes
		}
		return deferred.NewBool(b == 1), nil

	case wire.HintUsize:
		v, err := c.readUsize(width)
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewUsize(v), nil

	case wire.HintU8:
		b, err := c.readByte()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewU8(b), nil

	case wire.HintU16:
		v, err := c.readUint16()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewU16(v), nil

	case wire.HintU32:
		v, err := c.readUint32()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewU32(v), nil

	case wire.HintU64:
		v, err := c.readUint64()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewU64(v), nil

	case wire.HintU128:
		b, err := c.readBytes(16)
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewU128(new(big.Int).SetBytes(b)), nil

	case wire.HintIsize:
		v, err := c.readUsize(width)
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewIsize(int64(v)), nil

	case wire.HintI8:
		b, err := c.readByte()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewI8(int8(b)), nil

	case wire.HintI16:
		v, err := c.readUint16()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewI16(int16(v)), nil

	case wire.HintI32:
		v, err := c.readUint32()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewI32(int32(v)), nil

	case wire.HintI64:
		v, err := c.readUint64()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewI64(int64(v)), nil

	case wire.HintI128:
		b, err := c.readBytes(16)
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewI128(decodeTwosComplement128(b)), nil

	case wire.HintF32:
		v, err := c.readUint32()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewF32(math.Float32frombits(v)), nil

	case wire.HintF64:
		v, err := c.readUint64()
		if err != nil {
			return deferred.Value{}, err
		}
		return deferred.NewF64(math.Float64frombits(v)), nil

	case wire.HintChar:
		return decodeChar(c)

	case wire.HintStringSlice:
		return decodeStringSlice(c, width)

	case wire.HintList:
		return decodeList(c, width, shapes)

	case wire.HintDynList:
		return decodeDynList(c, width, shapes)

	case wire.HintTuple:
		return decodeTuple(c, width, shapes)

	case wire.HintWriteStatements:
		return decodeWriteStatements(c, width, shapes)

	case wire.HintTypeStructure:
		return decodeTypeStructure(c, width, shapes)

	default:
		return deferred.Value{}, deferrs.ErrUnknownTypeHint
	}
}

// decodeTwosComplement128 reverses Encoder.writeInt128: a 16-byte big-endian
// two's-complement field becomes a negative value whenever its sign bit is
// set.
func decodeTwosComplement128(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), 128)
		v.Sub(v, modulus)
	}
	return v
}

func decodeChar(c *cursor) (deferred.Value, error) {
	n, err := c.readByte()
	if err != nil {
		return deferred.Value{}, err
	}
	if n < 1 || n > utf8.UTFMax {
		return deferred.Value{}, deferrs.ErrInvalidCharLength
	}

	b, err := c.readBytes(int(n))
	if err != nil {
		return deferred.Value{}, err
	}

	r, size := utf8.DecodeRune(b)
	if size != int(n) || (r == utf8.RuneError && size == 1) {
		return deferred.Value{}, deferrs.ErrInvalidUTF8Char
	}

	return deferred.NewChar(r), nil
}

func decodeStringSlice(c *cursor, width wire.PointerWidth) (deferred.Value, error) {
	length, err := c.readUsize(width)
	if err != nil {
		return deferred.Value{}, err
	}

	n, ok := toInt(length)
	if !ok {
		return deferred.Value{}, deferrs.ErrLengthOverflow
	}

	b, err := c.readBytes(n)
	if err != nil {
		return deferred.Value{}, err
	}

	if !utf8.Valid(b) {
		return deferred.Value{}, deferrs.ErrInvalidStringBytes
	}

	return deferred.NewString(string(b)), nil
}

// decodeList decodes both HintList and HintDynList payloads into the same
// deferred.NewList representation: the original source's Value::List is
// "reused for array, vec and slice containing both single and dyn values"
// (crates/decoder/src/values.rs), so a monomorphic List and a
// heterogeneous DynList converge on one decoded shape.
func decodeList(c *cursor, width wire.PointerWidth, shapes ShapeProvider) (deferred.Value, error) {
	length, err := c.readUsize(width)
	if err != nil {
		return deferred.Value{}, err
	}

	n, ok := toInt(length)
	if !ok {
		return deferred.Value{}, deferrs.ErrLengthOverflow
	}

	if n == 0 {
		return deferred.NewList(nil), nil
	}

	hintByte, err := c.readByte()
	if err != nil {
		return deferred.Value{}, err
	}
	hint, ok := wire.ParseTypeHint(hintByte)
	if !ok {
		return deferred.Value{}, deferrs.ErrUnknownTypeHint
	}

	elements := make([]deferred.Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := decodeRaw(c, width, shapes, hint)
		if err != nil {
			return deferred.Value{}, err
		}
		elements = append(elements, v)
	}

	return deferred.NewList(elements), nil
}

func decodeDynList(c *cursor, width wire.PointerWidth, shapes ShapeProvider) (deferred.Value, error) {
	length, err := c.readUsize(width)
	if err != nil {
		return deferred.Value{}, err
	}

	n, ok := toInt(length)
	if !ok {
		return deferred.Value{}, deferrs.ErrLengthOverflow
	}

	elements := make([]deferred.Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := decodeValue(c, width, shapes)
		if err != nil {
			return deferred.Value{}, err
		}
		elements = append(elements, v)
	}

	return deferred.NewList(elements), nil
}

func decodeTuple(c *cursor, width wire.PointerWidth, shapes ShapeProvider) (deferred.Value, error) {
	n, err := c.readByte()
	if err != nil {
		return deferred.Value{}, err
	}

	elements := make([]deferred.Value, 0, n)
	for i := 0; i < int(n); i++ {
		v, err := decodeValue(c, width, shapes)
		if err != nil {
			return deferred.Value{}, err
		}
		elements = append(elements, v)
	}

	return deferred.NewTuple(elements), nil
}

// decodeWriteStatements decodes a WriteStatements sequence into a
// deferred.Value holding one deferred.NestedWrite per nested write!
// invocation (spec.md §3 "WriteStatements([ { expression, append_newline,
// decoded_values }… ])"), each already split into positional/named values
// via its own registered shape.
func decodeWriteStatements(c *cursor, width wire.PointerWidth, shapes ShapeProvider) (deferred.Value, error) {
	var entries []deferred.NestedWrite

	for {
		hintByte, err := c.readByte()
		if err != nil {
			return deferred.Value{}, err
		}

		switch hintByte {
		case wire.StatementWriterEnd:
			return deferred.NewWriteStatements(entries), nil

		case wire.StatementWriterContinue:
			crateRaw, err := c.readUint16()
			if err != nil {
				return deferred.Value{}, err
			}
			wsRaw, err := c.readUint16()
			if err != nil {
				return deferred.Value{}, err
			}

			crateID := wire.CrateID(crateRaw)
			writeID := wire.WriteStatementID(wsRaw)

			if !shapes.HasCrate(crateID) {
				return deferred.Value{}, deferrs.ErrUnknownCrate
			}
			shape, ok := shapes.WriteStatementShape(crateID, writeID)
			if !ok {
				return deferred.Value{}, deferrs.ErrUnknownStatement
			}

			values, err := decodeSegments(c, width, shapes, shape.ArgCount())
			if err != nil {
				return deferred.Value{}, err
			}

			positional, named := splitArgs(shape, values)
			entries = append(entries, deferred.NestedWrite{
				ProcessedFormatString: shape.ProcessedFormatString,
				AppendNewline:         shape.AppendNewline,
				Positional:            positional,
				Named:                 named,
			})

		default:
			return deferred.Value{}, deferrs.ErrUnknownStatementWriterHint
		}
	}
}

func decodeTypeStructure(c *cursor, width wire.PointerWidth, shapes ShapeProvider) (deferred.Value, error) {
	crateRaw, err := c.readUint16()
	if err != nil {
		return deferred.Value{}, err
	}
	tsRaw, err := c.readUint16()
	if err != nil {
		return deferred.Value{}, err
	}

	crateID := wire.CrateID(crateRaw)
	typeID := wire.TypeStructureID(tsRaw)

	if !shapes.HasCrate(crateID) {
		return deferred.Value{}, deferrs.ErrUnknownCrate
	}
	shape, ok := shapes.TypeStructureShape(crateID, typeID)
	if !ok {
		return deferred.Value{}, deferrs.ErrUnknownTypeStructure
	}

	variantShape := shape.Struct
	enumVariantName := ""

	if shape.IsEnum {
		raw, err := c.readUsize(width)
		if err != nil {
			return deferred.Value{}, err
		}
		idx, ok := toInt(raw)
		if !ok {
			return deferred.Value{}, deferrs.ErrVariantIndexOverflow
		}
		if idx < 0 || idx >= len(shape.Variants) {
			return deferred.Value{}, deferrs.ErrUnknownVariantIndex
		}
		enumVariantName = shape.Variants[idx].Name
		variantShape = shape.Variants[idx].Shape
	}

	fieldCount := variantShape.FieldCount
	if variantShape.Kind == deferred.VariantNamed {
		fieldCount = len(variantShape.FieldNames)
	}

	fields := make([]deferred.Value, 0, fieldCount)
	for i := 0; i < fieldCount; i++ {
		v, err := decodeValue(c, width, shapes)
		if err != nil {
			return deferred.Value{}, err
		}
		fields = append(fields, v)
	}

	variant := deferred.TypeVariant{Kind: variantShape.Kind}
	switch variantShape.Kind {
	case deferred.VariantTuple:
		variant.Tuple = fields
	case deferred.VariantNamed:
		named := make([]deferred.NamedField, len(fields))
		for i, v := range fields {
			named[i] = deferred.NamedField{Name: variantShape.FieldNames[i], Value: v}
		}
		variant.Named = named
	}

	if shape.IsEnum {
		variant.HasEnumVariant = true
		variant.EnumVariant = enumVariantName
	}

	return deferred.NewStructType(shape.Name, variant), nil
}

// decodeSegments drives count self-describing Values (spec.md §4.G
// SegmentsDecoder), used both for a print statement's top-level arguments
// and for each nested write statement inside a WriteStatements sequence.
func decodeSegments(c *cursor, width wire.PointerWidth, shapes ShapeProvider, count int) ([]deferred.Value, error) {
	values := make([]deferred.Value, 0, count)
	for len(values) < count {
		v, err := decodeValue(c, width, shapes)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
