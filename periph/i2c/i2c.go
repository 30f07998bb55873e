// Package i2c is a polled I2C master for the STM32F411 I2C units.
//
// A Bus drives one unit through an injected register set, so the same code
// runs against the chip (Instance.Registers, TinyGo only) or a simulated
// peripheral (package i2csim). Every status poll is bounded by a Budget and
// returns errcode.Timeout when it runs out; nothing in this package blocks
// forever.
//
// The primitives follow the bus state machine
//
//	idle -> Start -> Address -> WriteByte/ReadByte ... -> Stop -> idle
//
// and WriteBulk, ReadBulk and WriteRead compose them into whole transfers.
// A Bus has no internal locking: one owner drives a unit at a time.
package i2c

import (
	"f411hal/errcode"
	"f411hal/periph/rcc"
	"f411hal/x/timex"
)

// ClockGate switches the unit's bus clock. *rcc.Gate implements it.
type ClockGate interface {
	Enable(c rcc.Clock)
	Disable(c rcc.Clock)
}

// Bus is one I2C unit in master mode.
type Bus struct {
	inst  Instance
	clock rcc.Clock
	regs  Registers
	gate  ClockGate

	budget  timex.Budget
	cycles  timex.Cycles // default budget, sized by Config.Timeout
	custom  bool
	cfg     Config
	timing  Timing
	enabled bool
}

// Option customises a Bus at construction.
type Option func(*Bus)

// WithBudget replaces the iteration budget with b for every poll.
func WithBudget(b timex.Budget) Option {
	return func(bus *Bus) {
		bus.budget = b
		bus.custom = true
	}
}

// New binds a Bus to an instance, its registers and the clock gate. It does
// not touch the hardware; call Configure before use.
func New(inst Instance, regs Registers, gate ClockGate, opts ...Option) *Bus {
	b := &Bus{
		inst:  inst,
		clock: inst.Clock(),
		regs:  regs,
		gate:  gate,
	}
	b.budget = &b.cycles
	for _, o := range opts {
		o(b)
	}
	return b
}

// Configure (re)initialises the unit: clock on, peripheral off, timing and
// addressing programmed, peripheral on. A bad config leaves the hardware
// untouched.
func (b *Bus) Configure(cfg Config) error {
	if !b.inst.Valid() {
		return errcode.Unsupported
	}
	cfg = cfg.withDefaults()
	t, err := ComputeTiming(cfg.PeripheralClock, cfg.ClockSpeed, cfg.DutyCycle)
	if err != nil {
		return err
	}

	b.gate.Enable(b.clock)
	r := b.regs
	r.disable()
	r.CR1.Set(0)
	r.applyTiming(t)
	r.setOwnAddress(cfg.OwnAddress)
	if cfg.GeneralCall {
		r.CR1.SetBits(cr1ENGC)
	}
	if cfg.NoStretch {
		r.CR1.SetBits(cr1NOSTRETCH)
	}
	r.enable()

	if !b.custom {
		b.cycles.Limit = cfg.Timeout
	}
	b.cfg = cfg
	b.timing = t
	b.enabled = true
	return nil
}

// Disable switches the peripheral off and then gates its clock.
func (b *Bus) Disable() {
	b.regs.disable()
	b.gate.Disable(b.clock)
	b.enabled = false
}

// Enabled reports whether Configure has run since the last Disable.
func (b *Bus) Enabled() bool { return b.enabled }

// Config returns the applied configuration with defaults filled in.
func (b *Bus) Config() Config { return b.cfg }

// Timing returns the register values of the applied configuration.
func (b *Bus) Timing() Timing { return b.timing }

// Start generates a START (or repeated START) condition and waits for SB.
func (b *Bus) Start() error {
	if !b.enabled {
		return errcode.NotEnabled
	}
	return b.start()
}

// Stop requests a STOP condition. The hardware emits it after the current
// byte; there is nothing to wait for.
func (b *Bus) Stop() {
	if b.enabled {
		b.regs.generateStop()
	}
}

// WriteByte sends one data byte and waits until it has left the shift
// register.
func (b *Bus) WriteByte(c byte) error {
	if !b.enabled {
		return errcode.NotEnabled
	}
	return b.writeByte(c)
}

// ReadByte receives one data byte. ack selects whether the byte is
// acknowledged; the last byte of a read must be read with ack false so the
// slave releases SDA.
func (b *Bus) ReadByte(ack bool) (byte, error) {
	if !b.enabled {
		return 0, errcode.NotEnabled
	}
	return b.readByte(ack)
}

func (b *Bus) start() error {
	b.regs.generateStart()
	return b.wait(sr1SB)
}

func (b *Bus) writeByte(c byte) error {
	if err := b.wait(sr1TXE); err != nil {
		return err
	}
	b.regs.DR.Set(uint32(c))
	return b.wait(sr1BTF)
}

func (b *Bus) readByte(ack bool) (byte, error) {
	b.regs.setAck(ack)
	if err := b.wait(sr1RXNE); err != nil {
		return 0, err
	}
	return byte(b.regs.DR.Get()), nil
}

// wait polls SR1 until one of flags is set, an error flag latches or the
// budget runs out.
func (b *Bus) wait(flags uint32) error {
	b.budget.Reset()
	for {
		sr1 := b.regs.SR1.Get()
		if !b.cfg.IgnoreErrorFlags && sr1&sr1Errors != 0 {
			b.regs.clearErrors(sr1)
			return errorOf(sr1)
		}
		if sr1&flags != 0 {
			return nil
		}
		if !b.budget.Tick() {
			return errcode.Timeout
		}
	}
}

// errorOf maps latched SR1 error flags to a status. Bus errors win over
// arbitration loss, which wins over a missing ACK.
func errorOf(sr1 uint32) errcode.Code {
	switch {
	case sr1&sr1BERR != 0:
		return errcode.BusError
	case sr1&sr1ARLO != 0:
		return errcode.ArbitrationLost
	case sr1&sr1AF != 0:
		return errcode.AckFailure
	case sr1&sr1OVR != 0:
		return errcode.Overrun
	}
	return errcode.Error
}
