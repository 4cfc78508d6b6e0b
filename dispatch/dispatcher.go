package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/deferfmt/deferfmt/deferrs"
	"github.com/deferfmt/deferfmt/internal/option"
	"github.com/deferfmt/deferfmt/wire"
	"github.com/deferfmt/deferfmt/wirevalue"
)

// init states for the one-shot compare-and-swap lifecycle (spec.md §4.I).
// There is no literal CAS convention anywhere in the example pack, so this
// uses sync/atomic directly rather than adapting a borrowed pattern.
const (
	stateUninit int32 = iota
	stateInitializing
	stateInit
)

// Dispatcher is the single-writer global singleton that serializes frame
// emission behind a critical section. The zero value is a valid, uninitialized
// Dispatcher: Begin/WriteValue/Release still complete but write nothing,
// matching the spec's "uninitialized writes are no-ops, not errors" rule.
type Dispatcher struct {
	state atomic.Int32
	mu    sync.Mutex

	sink    wirevalue.Dispatcher
	stamper Stamper
	width   wire.PointerWidth
}

// New returns an uninitialized Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{}
}

// WithStamper attaches a Stamper that contributes one optional 64-bit stamp
// per frame.
func WithStamper(s Stamper) option.Option[*Dispatcher] {
	return option.NoError(func(d *Dispatcher) {
		d.stamper = s
	})
}

// Init performs the one-shot compare-and-swap transition from uninitialized
// to initialized. A second call returns deferrs.ErrAlreadyInitialized; the
// first caller to observe stateUninit wins the race, every other caller
// (concurrent or later) loses it.
func (d *Dispatcher) Init(sink wirevalue.Dispatcher, width wire.PointerWidth, opts ...option.Option[*Dispatcher]) error {
	if !d.state.CompareAndSwap(stateUninit, stateInitializing) {
		return deferrs.ErrAlreadyInitialized
	}

	d.sink = sink
	d.width = width
	if err := option.Apply(d, opts...); err != nil {
		d.state.Store(stateUninit)
		return err
	}

	d.state.Store(stateInit)
	return nil
}

func (d *Dispatcher) initialized() bool {
	return d.state.Load() == stateInit
}

// Handle represents one in-flight statement emission: the critical section
// is held from Begin until Release (spec.md §4.I, §5).
type Handle struct {
	d    *Dispatcher
	enc  *wirevalue.Encoder
	live bool
}

// Begin acquires the dispatcher's critical section and writes the frame
// header, optional stamp, and CrateId+PrintStatementId, in that order. When
// the dispatcher is uninitialized the sequence still runs to completion but
// produces no encoder and writes nothing.
func (d *Dispatcher) Begin(level wire.Level, crateID wire.CrateID, printID wire.PrintStatementID) *Handle {
	d.mu.Lock()

	if !d.initialized() {
		return &Handle{d: d, live: true}
	}

	var stamp uint64
	hasStamp := d.stamper != nil
	if hasStamp {
		stamp = d.stamper.Stamp()
	}

	enc := wirevalue.NewEncoder(d.width)
	enc.WriteRawByte(wire.NewHeader(d.width, level, hasStamp).Byte())
	if hasStamp {
		enc.WriteRawUint64(stamp)
	}
	enc.WriteRawUint16(uint16(crateID))
	enc.WriteRawUint16(uint16(printID))

	return &Handle{d: d, enc: enc, live: true}
}

// WriteValue encodes one argument into the frame. A no-op when the
// dispatcher was uninitialized at Begin.
func (h *Handle) WriteValue(v wirevalue.Value) {
	if h.enc == nil {
		return
	}
	h.enc.WriteValue(v)
}

// Release dispatches the accumulated frame to the sink, returns its buffer
// to the pool, and releases the critical section. Safe to call exactly once
// per Handle.
func (h *Handle) Release() {
	if !h.live {
		return
	}
	h.live = false

	if h.enc != nil {
		h.enc.Dispatch(h.d.sink)
		h.enc.Release()
	}

	h.d.mu.Unlock()
}
