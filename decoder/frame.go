package decoder

import (
	"github.com/deferfmt/deferfmt/deferred"
	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/wire"
)

// Frame is one fully decoded print-statement emission (spec.md §6 wire
// grammar: header [stamp] crate_id print_id content*), already resolved
// against its catalog record into the named shape spec.md §3 describes
// for a Print statement record: a Location plus a stored expression's
// processed format string and positional/named argument values.
type Frame struct {
	Header           wire.Header
	Stamp            *uint64
	CrateID          wire.CrateID
	PrintStatementID wire.PrintStatementID

	Location              Location
	ProcessedFormatString string
	AppendNewline         bool
	Positional            []deferred.Value
	Named                 []deferred.NamedValue
}

// FrameDecoder turns a growing byte stream into Frames (spec.md §4.G).
// Each frame's own header carries the pointer width it was written at
// (spec.md §3), so the decoder needs no width configured up front.
// It is not safe for concurrent use; the consumer side is single-threaded
// per decoder instance (spec.md §5).
type FrameDecoder struct {
	shapes ShapeProvider
	buf    []byte
}

// NewFrameDecoder creates a decoder that resolves statement and type shapes
// through shapes.
func NewFrameDecoder(shapes ShapeProvider) *FrameDecoder {
	return &FrameDecoder{shapes: shapes}
}

// Feed appends newly arrived bytes to the decoder's buffer.
func (d *FrameDecoder) Feed(data []byte) {
	d.buf = append(d.buf, data...)
}

// Reset discards any buffered bytes, used to resynchronize after a
// structural decode error has left the stream corrupt.
func (d *FrameDecoder) Reset() {
	d.buf = nil
}

// Decode attempts to produce one Frame from the buffered bytes.
//
// On ErrIncomplete, the buffer is left exactly as it was: Feed more bytes
// and call Decode again. On any other error the frame is structurally
// invalid; the caller should Reset before feeding further bytes (spec.md
// §4.G, §5 "will consume whatever arrives and fail on the next malformed
// byte"). On success, the bytes belonging to this frame are dropped from
// the buffer so the next Decode call starts on the following frame.
func (d *FrameDecoder) Decode() (*Frame, error) {
	c := &cursor{data: d.buf}

	frame, err := d.decodeFrame(c)
	if err != nil {
		return nil, err
	}

	d.buf = d.buf[c.pos:]
	return frame, nil
}

func (d *FrameDecoder) decodeFrame(c *cursor) (*Frame, error) {
	headerByte, err := c.readByte()
	if err != nil {
		return nil, err
	}

	header, ok := wire.ParseHeader(headerByte)
	if !ok {
		return nil, deferrs.ErrUnknownHeader
	}

	var stamp *uint64
	if header.HasStamp() {
		v, err := c.readUint64()
		if err != nil {
			return nil, err
		}
		stamp = &v
	}

	crateRaw, err := c.readUint16()
	if err != nil {
		return nil, err
	}
	crateID := wire.CrateID(crateRaw)

	if !d.shapes.HasCrate(crateID) {
		return nil, deferrs.ErrUnknownCrate
	}

	printRaw, err := c.readUint16()
	if err != nil {
		return nil, err
	}
	printID := wire.PrintStatementID(printRaw)

	shape, ok := d.shapes.PrintStatementShape(crateID, printID)
	if !ok {
		return nil, deferrs.ErrUnknownStatement
	}

	values, err := decodeSegments(c, header.PointerWidth(), d.shapes, shape.ArgCount())
	if err != nil {
		return nil, err
	}

	positional, named := splitArgs(shape, values)

	return &Frame{
		Header:                header,
		Stamp:                 stamp,
		CrateID:               crateID,
		PrintStatementID:      printID,
		Location:              shape.Location,
		ProcessedFormatString: shape.ProcessedFormatString,
		AppendNewline:         shape.AppendNewline,
		Positional:            positional,
		Named:                 named,
	}, nil
}
