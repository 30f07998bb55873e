package i2c

import "f411hal/device/stm32f411"

// Bus speed limits.
const (
	StandardMode uint32 = 100_000
	FastMode     uint32 = 400_000
)

// DefaultTimeout is the poll budget, in loop iterations, of every wait.
const DefaultTimeout uint32 = 10_000

// Duty is the fast-mode SCL low/high ratio.
type Duty uint8

const (
	Duty2    Duty = iota // Tlow/Thigh = 2
	Duty16_9             // Tlow/Thigh = 16/9
)

func (d Duty) String() string {
	if d == Duty16_9 {
		return "16:9"
	}
	return "2:1"
}

// Config is applied by Bus.Configure. All fields are optional.
type Config struct {
	// ClockSpeed is the target SCL frequency in Hz. Defaults to 100 kHz.
	ClockSpeed uint32
	// OwnAddress is the unit's 7-bit slave address (unused in master mode).
	OwnAddress uint8
	// DutyCycle only matters above 100 kHz.
	DutyCycle   Duty
	GeneralCall bool
	// NoStretch disables clock stretching.
	NoStretch bool

	// PeripheralClock is PCLK1 in Hz. Defaults to the 16 MHz HSI reset clock.
	PeripheralClock uint32
	// Timeout bounds every status poll, in loop iterations. Defaults to
	// DefaultTimeout. Ignored when the bus was built WithBudget.
	Timeout uint32

	// IgnoreErrorFlags stops the driver from checking BERR, ARLO, AF and
	// OVR while polling; faults then surface as timeouts.
	IgnoreErrorFlags bool
	// KeepBusOnAbort skips the STOP condition when a bulk transfer fails
	// part-way, leaving the bus as the failure left it.
	KeepBusOnAbort bool
}

func (c Config) withDefaults() Config {
	if c.ClockSpeed == 0 {
		c.ClockSpeed = StandardMode
	}
	if c.PeripheralClock == 0 {
		c.PeripheralClock = stm32f411.HSIClock
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	c.OwnAddress &= 0x7F
	return c
}
