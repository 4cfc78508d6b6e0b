package decoder

import (
	"github.com/deferfmt/deferfmt/endian"
	"github.com/deferfmt/deferfmt/wire"
)

// byteOrder matches the fixed big-endian wire order wirevalue's Encoder
// writes with.
var byteOrder = endian.GetBigEndianEngine()

// cursor reads from a fixed byte slice, advancing pos only on a successful
// read. A read that would run past the end of data leaves pos untouched and
// returns ErrIncomplete, so a caller can retry the exact same cursor
// position once more bytes have been appended to the backing slice.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, ErrIncomplete
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, ErrIncomplete
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint16(b), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint32(b), nil
}

func (c *cursor) readUint64() (uint64, error) {
	b, err := c.readBytes(8)
	if err != nil {
		return 0, err
	}
	return byteOrder.Uint64(b), nil
}

// readUsize reads a length or variant-index field at the frame's
// negotiated pointer width.
func (c *cursor) readUsize(width wire.PointerWidth) (uint64, error) {
	switch width {
	case wire.PointerWidth16:
		v, err := c.readUint16()
		return uint64(v), err
	case wire.PointerWidth32:
		v, err := c.readUint32()
		return uint64(v), err
	default:
		return c.readUint64()
	}
}
