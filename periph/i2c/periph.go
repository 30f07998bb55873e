package i2c

import (
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"

	"f411hal/errcode"
)

// Ensure Bus satisfies the driver-facing bus contracts at compile time.
var (
	_ drivers.I2C   = (*Bus)(nil)
	_ i2c.BusCloser = (*Bus)(nil)
)

func (b *Bus) String() string { return b.inst.String() }

// SetSpeed reapplies the current configuration at a new SCL frequency. The
// bus must have been configured.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	if !b.enabled {
		return errcode.NotEnabled
	}
	if f < physic.Hertz || f > physic.Frequency(FastMode)*physic.Hertz {
		return errcode.InvalidParams
	}
	cfg := b.cfg
	cfg.ClockSpeed = uint32(f / physic.Hertz)
	return b.Configure(cfg)
}

// Close disables the unit.
func (b *Bus) Close() error {
	b.Disable()
	return nil
}
