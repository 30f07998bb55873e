// Package timex holds the time sources used to bound busy-wait loops and the
// explicit settle-delay primitive.
package timex

import "time"

// Budget bounds one polling loop. Reset arms a fresh budget before a wait;
// Tick consumes one unit and reports false once the budget is exhausted.
type Budget interface {
	Reset()
	Tick() bool
}

// Cycles is an iteration-count budget. The zero value is exhausted on the
// first Tick.
type Cycles struct {
	Limit uint32
	left  uint32
}

// NewCycles returns an armed iteration budget.
func NewCycles(limit uint32) *Cycles {
	c := &Cycles{Limit: limit}
	c.Reset()
	return c
}

func (c *Cycles) Reset() { c.left = c.Limit }

func (c *Cycles) Tick() bool {
	if c.left <= 1 {
		c.left = 0
		return false
	}
	c.left--
	return true
}

// Wall is a wall-clock budget. Now defaults to time.Now and may be replaced
// to drive expiry from a test.
type Wall struct {
	Timeout  time.Duration
	Now      func() time.Time
	deadline time.Time
}

func (w *Wall) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func (w *Wall) Reset() { w.deadline = w.now().Add(w.Timeout) }

func (w *Wall) Tick() bool { return w.now().Before(w.deadline) }

// Spin burns n loop iterations. Some peripherals need this after their bus
// clock is switched on before registers respond reliably.
func Spin(n uint32) {
	for i := uint32(0); i < n; i++ {
		nop()
	}
}

//go:noinline
func nop() {}
