package wirevalue

import (
	"math/big"

	"github.com/deferfmt/deferfmt/wire"
)

// Bool encodes a single byte, 0x00 or 0x01.
type Bool bool

func (v Bool) Hint() wire.TypeHint  { return wire.HintBool }
func (v Bool) writeRaw(e *Encoder)  { e.writeBool(bool(v)) }

// Usize and Isize are written at the frame's negotiated pointer width.
type Usize uint64

func (v Usize) Hint() wire.TypeHint { return wire.HintUsize }
func (v Usize) writeRaw(e *Encoder) { e.writeUsize(uint64(v)) }

type Isize int64

func (v Isize) Hint() wire.TypeHint { return wire.HintIsize }
func (v Isize) writeRaw(e *Encoder) { e.writeUsize(uint64(int64(v))) }

type U8 uint8

func (v U8) Hint() wire.TypeHint { return wire.HintU8 }
func (v U8) writeRaw(e *Encoder) { e.writeByte(byte(v)) }

type U16 uint16

func (v U16) Hint() wire.TypeHint { return wire.HintU16 }
func (v U16) writeRaw(e *Encoder) { e.writeUint16(uint16(v)) }

type U32 uint32

func (v U32) Hint() wire.TypeHint { return wire.HintU32 }
func (v U32) writeRaw(e *Encoder) { e.writeUint32(uint32(v)) }

type U64 uint64

func (v U64) Hint() wire.TypeHint { return wire.HintU64 }
func (v U64) writeRaw(e *Encoder) { e.writeUint64(uint64(v)) }

// U128 wraps an arbitrary-precision unsigned magnitude, written as a fixed
// 16-byte big-endian field (the natural width of a 128-bit integer).
type U128 struct{ Int *big.Int }

func (v U128) Hint() wire.TypeHint { return wire.HintU128 }
func (v U128) writeRaw(e *Encoder) { e.writeUint128(v.Int) }

type I8 int8

func (v I8) Hint() wire.TypeHint { return wire.HintI8 }
func (v I8) writeRaw(e *Encoder) { e.writeByte(byte(v)) }

type I16 int16

func (v I16) Hint() wire.TypeHint { return wire.HintI16 }
func (v I16) writeRaw(e *Encoder) { e.writeUint16(uint16(v)) }

type I32 int32

func (v I32) Hint() wire.TypeHint { return wire.HintI32 }
func (v I32) writeRaw(e *Encoder) { e.writeUint32(uint32(v)) }

type I64 int64

func (v I64) Hint() wire.TypeHint { return wire.HintI64 }
func (v I64) writeRaw(e *Encoder) { e.writeUint64(uint64(v)) }

// I128 wraps an arbitrary-precision signed value, written as a fixed
// 16-byte big-endian two's-complement field.
type I128 struct{ Int *big.Int }

func (v I128) Hint() wire.TypeHint { return wire.HintI128 }
func (v I128) writeRaw(e *Encoder) { e.writeInt128(v.Int) }

type F32 float32

func (v F32) Hint() wire.TypeHint { return wire.HintF32 }
func (v F32) writeRaw(e *Encoder) { e.writeFloat32(float32(v)) }

type F64 float64

func (v F64) Hint() wire.TypeHint { return wire.HintF64 }
func (v F64) writeRaw(e *Encoder) { e.writeFloat64(float64(v)) }

// Char encodes a length byte (1-4) followed by the rune's UTF-8 bytes.
type Char rune

func (v Char) Hint() wire.TypeHint { return wire.HintChar }
func (v Char) writeRaw(e *Encoder) { e.writeChar(rune(v)) }

// StringSlice encodes a usize byte-length prefix followed by UTF-8 bytes.
type StringSlice string

func (v StringSlice) Hint() wire.TypeHint { return wire.HintStringSlice }
func (v StringSlice) writeRaw(e *Encoder)  { e.writeStringSlice(string(v)) }
