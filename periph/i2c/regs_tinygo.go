//go:build tinygo && stm32f411

package i2c

import (
	"runtime/volatile"
	"unsafe"

	"f411hal/device/stm32f411"
)

// hwBlock mirrors the I2C register layout.
type hwBlock struct {
	CR1   volatile.Register32
	CR2   volatile.Register32
	OAR1  volatile.Register32
	OAR2  volatile.Register32
	DR    volatile.Register32
	SR1   volatile.Register32
	SR2   volatile.Register32
	CCR   volatile.Register32
	TRISE volatile.Register32
}

var _ [stm32f411.I2C_TRISE + 4]byte = [unsafe.Sizeof(hwBlock{})]byte{}

// Registers returns the memory-mapped register set of the unit.
func (i Instance) Registers() Registers {
	b := (*hwBlock)(unsafe.Pointer(i.Base()))
	return Registers{
		CR1:   &b.CR1,
		CR2:   &b.CR2,
		OAR1:  &b.OAR1,
		OAR2:  &b.OAR2,
		DR:    &b.DR,
		SR1:   &b.SR1,
		SR2:   &b.SR2,
		CCR:   &b.CCR,
		TRISE: &b.TRISE,
	}
}
