package registration

import (
	"encoding/binary"

	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/fstring"
)

// Shapes are serialized to plain big-endian bytes before being handed to
// the catalog, the same sequential binary convention catalog/snapshot.go
// uses for its own persisted records: uint32 lengths, no padding.

func appendUint32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

func appendString(dst []byte, s string) []byte {
	dst = appendUint32(dst, uint32(len(s)))
	return append(dst, s...)
}

func appendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

// shapeReader is a minimal sequential reader over encoded shape bytes,
// reporting deferrs.ErrSnapshotCorrupt on any truncation or malformed tag.
type shapeReader struct {
	data   []byte
	offset int
}

func (r *shapeReader) exhausted() bool {
	return r.offset == len(r.data)
}

func (r *shapeReader) readUint32() (uint32, error) {
	if r.offset+4 > len(r.data) {
		return 0, deferrs.ErrSnapshotCorrupt
	}
	v := binary.BigEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return v, nil
}

func (r *shapeReader) readBytes(n uint32) ([]byte, error) {
	if r.offset+int(n) > len(r.data) {
		return nil, deferrs.ErrSnapshotCorrupt
	}
	b := r.data[r.offset : r.offset+int(n)]
	r.offset += int(n)
	return b, nil
}

func (r *shapeReader) readString() (string, error) {
	n, err := r.readUint32()
	if err != nil {
		return "", err
	}
	b, err := r.readBytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *shapeReader) readBool() (bool, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (r *shapeReader) readIdentifier() (fstring.Identifier, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return fstring.Identifier(s), nil
}

func encodeLocation(loc Location) []byte {
	out := appendString(nil, loc.File)
	out = appendUint32(out, loc.Line)
	return out
}

func (r *shapeReader) readLocation() (Location, error) {
	file, err := r.readString()
	if err != nil {
		return Location{}, err
	}
	line, err := r.readUint32()
	if err != nil {
		return Location{}, err
	}
	return Location{File: file, Line: line}, nil
}

func encodeStoredExpression(expr StoredExpression) []byte {
	out := appendString(nil, expr.ProcessedFormatString)
	out = appendBool(out, expr.AppendNewline)
	out = appendUint32(out, uint32(expr.PositionalArgCount))
	out = appendUint32(out, uint32(len(expr.NamedArgs)))
	for _, id := range expr.NamedArgs {
		out = appendString(out, string(id))
	}
	return out
}

func (r *shapeReader) readStoredExpression() (StoredExpression, error) {
	formatStr, err := r.readString()
	if err != nil {
		return StoredExpression{}, err
	}
	appendNewline, err := r.readBool()
	if err != nil {
		return StoredExpression{}, err
	}
	positional, err := r.readUint32()
	if err != nil {
		return StoredExpression{}, err
	}
	namedCount, err := r.readUint32()
	if err != nil {
		return StoredExpression{}, err
	}

	named := make([]fstring.Identifier, namedCount)
	for i := range named {
		id, err := r.readIdentifier()
		if err != nil {
			return StoredExpression{}, err
		}
		named[i] = id
	}

	return StoredExpression{
		ProcessedFormatString: formatStr,
		AppendNewline:         appendNewline,
		PositionalArgCount:    int(positional),
		NamedArgs:             named,
	}, nil
}

func encodeStatementShape(shape StatementShape) []byte {
	out := encodeLocation(shape.Location)
	out = append(out, encodeStoredExpression(shape.Expression)...)
	return out
}

func decodeStatementShape(data []byte) (StatementShape, error) {
	r := shapeReader{data: data}

	loc, err := r.readLocation()
	if err != nil {
		return StatementShape{}, err
	}
	expr, err := r.readStoredExpression()
	if err != nil {
		return StatementShape{}, err
	}
	if !r.exhausted() {
		return StatementShape{}, deferrs.ErrSnapshotCorrupt
	}

	return StatementShape{Location: loc, Expression: expr}, nil
}

const (
	variantKindUnit  byte = 0
	variantKindTuple byte = 1
	variantKindNamed byte = 2
)

func encodeVariant(out []byte, v Variant) []byte {
	switch v.Kind {
	case VariantUnit:
		return append(out, variantKindUnit)
	case VariantTuple:
		out = append(out, variantKindTuple)
		return appendUint32(out, uint32(v.FieldCount))
	default: // VariantNamed
		out = append(out, variantKindNamed)
		out = appendUint32(out, uint32(len(v.FieldNames)))
		for _, name := range v.FieldNames {
			out = appendString(out, name)
		}
		return out
	}
}

func (r *shapeReader) readVariant() (Variant, error) {
	kindByte, err := r.readBytes(1)
	if err != nil {
		return Variant{}, err
	}

	switch kindByte[0] {
	case variantKindUnit:
		return Variant{Kind: VariantUnit}, nil

	case variantKindTuple:
		n, err := r.readUint32()
		if err != nil {
			return Variant{}, err
		}
		return Variant{Kind: VariantTuple, FieldCount: int(n)}, nil

	case variantKindNamed:
		n, err := r.readUint32()
		if err != nil {
			return Variant{}, err
		}
		names := make([]string, n)
		for i := range names {
			name, err := r.readString()
			if err != nil {
				return Variant{}, err
			}
			names[i] = name
		}
		return Variant{Kind: VariantNamed, FieldNames: names}, nil

	default:
		return Variant{}, deferrs.ErrSnapshotCorrupt
	}
}

const (
	typeShapeKindStruct byte = 0
	typeShapeKindEnum   byte = 1
)

func encodeTypeShape(shape TypeShape) []byte {
	out := appendString(nil, shape.Name)

	if !shape.IsEnum {
		out = append(out, typeShapeKindStruct)
		return encodeVariant(out, shape.Struct)
	}

	out = append(out, typeShapeKindEnum)
	out = appendUint32(out, uint32(len(shape.Variants)))
	for _, v := range shape.Variants {
		out = appendString(out, v.Name)
		out = encodeVariant(out, v.Variant)
	}
	return out
}

func decodeTypeShape(data []byte) (TypeShape, error) {
	r := shapeReader{data: data}

	name, err := r.readString()
	if err != nil {
		return TypeShape{}, err
	}
	kindByte, err := r.readBytes(1)
	if err != nil {
		return TypeShape{}, err
	}

	switch kindByte[0] {
	case typeShapeKindStruct:
		v, err := r.readVariant()
		if err != nil {
			return TypeShape{}, err
		}
		if !r.exhausted() {
			return TypeShape{}, deferrs.ErrSnapshotCorrupt
		}
		return TypeShape{Name: name, Struct: v}, nil

	case typeShapeKindEnum:
		count, err := r.readUint32()
		if err != nil {
			return TypeShape{}, err
		}
		variants := make([]EnumVariant, count)
		for i := range variants {
			variantName, err := r.readString()
			if err != nil {
				return TypeShape{}, err
			}
			v, err := r.readVariant()
			if err != nil {
				return TypeShape{}, err
			}
			variants[i] = EnumVariant{Name: variantName, Variant: v}
		}
		if !r.exhausted() {
			return TypeShape{}, deferrs.ErrSnapshotCorrupt
		}
		return TypeShape{Name: name, IsEnum: true, Variants: variants}, nil

	default:
		return TypeShape{}, deferrs.ErrSnapshotCorrupt
	}
}
