// Package mmio describes 32-bit memory-mapped registers.
//
// Drivers only see the Register32 interface, so a driver can run against the
// chip's register blocks (TinyGo, *volatile.Register32 satisfies it), plain
// RAM words, or a simulated peripheral whose registers have read/write side
// effects.
package mmio

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// Register32 is the access surface of one 32-bit register. The method set
// matches runtime/volatile.Register32.
type Register32 interface {
	Get() uint32
	Set(value uint32)
	SetBits(value uint32)
	ClearBits(value uint32)
	HasBits(value uint32) bool
	ReplaceBits(value uint32, mask uint32, pos uint8)
}

// Word is a RAM-backed register without side effects.
type Word struct {
	v atomic.Uint32
}

func (w *Word) Get() uint32            { return w.v.Load() }
func (w *Word) Set(value uint32)       { w.v.Store(value) }
func (w *Word) SetBits(value uint32)   { w.v.Or(value) }
func (w *Word) ClearBits(value uint32) { w.v.And(^value) }
func (w *Word) HasBits(value uint32) bool {
	return w.v.Load()&value != 0
}
func (w *Word) ReplaceBits(value uint32, mask uint32, pos uint8) {
	w.Set(Replace(w.Get(), value, mask, pos))
}

// Replace returns word with the field (mask<<pos) set to value.
func Replace(word, value, mask uint32, pos uint8) uint32 {
	return word&^(mask<<pos) | (value&mask)<<pos
}

// Field is a bit field inside a register.
type Field struct {
	Pos   uint8
	Width uint8
}

// Mask returns the unshifted field mask.
func (f Field) Mask() uint32 {
	if f.Width >= 32 {
		return ^uint32(0)
	}
	return 1<<f.Width - 1
}

// Get reads the field from r.
func (f Field) Get(r Register32) uint32 {
	return r.Get() >> f.Pos & f.Mask()
}

// Set writes v into the field with a single read-modify-write.
func (f Field) Set(r Register32, v uint32) {
	r.ReplaceBits(v, f.Mask(), f.Pos)
}

// Of extracts the field from an already-read register value.
func Of[T constraints.Unsigned](f Field, word uint32) T {
	return T(word >> f.Pos & f.Mask())
}

// Bit returns a single-bit mask for position pos.
func Bit(pos uint8) uint32 { return 1 << pos }
