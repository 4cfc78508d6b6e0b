package wirevalue

import (
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/deferfmt/deferfmt/endian"
	"github.com/deferfmt/deferfmt/internal/pool"
	"github.com/deferfmt/deferfmt/wire"
)

// byteOrder is the fixed wire byte order (spec.md's framing is always
// big-endian, independent of host or negotiated pointer width).
var byteOrder = endian.GetBigEndianEngine()

// Encoder accumulates a single frame's encoded payload into a pooled buffer.
// It is not safe for concurrent use; the dispatch package serializes access
// through its single-writer critical section (spec.md §4.I).
type Encoder struct {
	buf   *pool.ByteBuffer
	width wire.PointerWidth
}

// NewEncoder checks out a frame buffer from the pool sized for the given
// pointer width, which governs how usize-width fields are written.
func NewEncoder(width wire.PointerWidth) *Encoder {
	return &Encoder{
		buf:   pool.GetFrameBuffer(),
		width: width,
	}
}

// Bytes returns the bytes accumulated so far. Valid until the next write or
// Release.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Dispatch hands the accumulated bytes to d without releasing the buffer;
// the caller still owns it and must call Release when done.
func (e *Encoder) Dispatch(d Dispatcher) {
	d.Write(e.buf.Bytes())
}

// Release returns the frame buffer to the pool. The encoder must not be used
// afterward.
func (e *Encoder) Release() {
	pool.PutFrameBuffer(e.buf)
}

// WriteValue writes the default encoding of v: a single hint byte followed
// by its raw payload (spec.md §4.E).
func (e *Encoder) WriteValue(v Value) {
	e.writeByte(byte(v.Hint()))
	v.writeRaw(e)
}

// WriteRawByte writes a single byte with no hint or framing of its own. Used
// by the dispatch package to write the frame header and statement writer
// hints, which are not themselves Values.
func (e *Encoder) WriteRawByte(b byte) {
	e.writeByte(b)
}

// WriteRawUint16 writes v big-endian with no hint or framing, used for the
// fixed-width CrateId/PrintStatementId pair that follows the header.
func (e *Encoder) WriteRawUint16(v uint16) {
	e.writeUint16(v)
}

// WriteRawUint64 writes v big-endian with no hint or framing, used for the
// optional stamp field.
func (e *Encoder) WriteRawUint64(v uint64) {
	e.writeUint64(v)
}

func (e *Encoder) writeByte(b byte) {
	start := e.buf.ExtendOrGrow(1)
	e.buf.B[start] = b
}

func (e *Encoder) writeBytes(data []byte) {
	e.buf.MustWrite(data)
}

func (e *Encoder) writeUint16(v uint16) {
	start := e.buf.ExtendOrGrow(2)
	byteOrder.PutUint16(e.buf.B[start:], v)
}

func (e *Encoder) writeUint32(v uint32) {
	start := e.buf.ExtendOrGrow(4)
	byteOrder.PutUint32(e.buf.B[start:], v)
}

func (e *Encoder) writeUint64(v uint64) {
	start := e.buf.ExtendOrGrow(8)
	byteOrder.PutUint64(e.buf.B[start:], v)
}

// writeUint128/writeInt128 write the natural 16-byte two's-complement
// big-endian representation of a 128-bit value.
func (e *Encoder) writeUint128(v *big.Int) {
	var out [16]byte
	v.FillBytes(out[:])
	e.writeBytes(out[:])
}

func (e *Encoder) writeInt128(v *big.Int) {
	var out [16]byte

	if v.Sign() >= 0 {
		v.FillBytes(out[:])
	} else {
		modulus := new(big.Int).Lsh(big.NewInt(1), 128)
		twosComplement := new(big.Int).Add(modulus, v)
		twosComplement.FillBytes(out[:])
	}

	e.writeBytes(out[:])
}

// writeUsize writes v at the width negotiated for this frame (spec.md
// "Design Notes" Pointer width): 2, 4, or 8 bytes.
func (e *Encoder) writeUsize(v uint64) {
	switch e.width {
	case wire.PointerWidth16:
		e.writeUint16(uint16(v))
	case wire.PointerWidth32:
		e.writeUint32(uint32(v))
	default:
		e.writeUint64(v)
	}
}

func (e *Encoder) writeFloat32(v float32) {
	e.writeUint32(math.Float32bits(v))
}

func (e *Encoder) writeFloat64(v float64) {
	e.writeUint64(math.Float64bits(v))
}

func (e *Encoder) writeBool(v bool) {
	if v {
		e.writeByte(0x01)
	} else {
		e.writeByte(0x00)
	}
}

// writeChar writes one length byte (1-4) followed by that many UTF-8 bytes.
func (e *Encoder) writeChar(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	e.writeByte(byte(n))
	e.writeBytes(buf[:n])
}

// writeStringSlice writes a usize byte-length prefix followed by the raw
// UTF-8 bytes.
func (e *Encoder) writeStringSlice(s string) {
	e.writeUsize(uint64(len(s)))
	e.writeBytes([]byte(s))
}
