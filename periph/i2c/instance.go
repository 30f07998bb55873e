package i2c

import (
	"f411hal/device/stm32f411"
	"f411hal/periph/rcc"
)

// Instance selects one of the chip's I2C units. The zero value is invalid.
type Instance uint8

const (
	I2C1 Instance = iota + 1
	I2C2
)

// Base returns the register block address.
func (i Instance) Base() uintptr {
	switch i {
	case I2C1:
		return stm32f411.I2C1Base
	case I2C2:
		return stm32f411.I2C2Base
	}
	return 0
}

// Clock returns the bus clock gating this unit.
func (i Instance) Clock() rcc.Clock {
	if i == I2C2 {
		return rcc.I2C2
	}
	return rcc.I2C1
}

func (i Instance) Valid() bool { return i == I2C1 || i == I2C2 }

func (i Instance) String() string {
	switch i {
	case I2C1:
		return "I2C1"
	case I2C2:
		return "I2C2"
	}
	return "I2C?"
}
