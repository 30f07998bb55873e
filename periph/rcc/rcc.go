// Package rcc gates peripheral bus clocks on the STM32F411.
//
// A peripheral's registers only respond once its clock enable bit is set, so
// drivers call Enable before the first register access and Disable only after
// the peripheral itself has been switched off.
package rcc

import (
	"f411hal/device/stm32f411"
	"f411hal/mmio"
	"f411hal/x/timex"
)

// BusID names the clock-enable register a peripheral hangs off.
type BusID uint8

const (
	AHB1 BusID = iota
	APB1
	APB2
)

func (b BusID) String() string {
	switch b {
	case AHB1:
		return "AHB1"
	case APB1:
		return "APB1"
	case APB2:
		return "APB2"
	}
	return "bus?"
}

// Clock is one peripheral clock-enable bit.
type Clock struct {
	Bus BusID
	Bit uint8
}

// Peripheral clocks used by the HAL.
var (
	I2C1 = Clock{APB1, stm32f411.RCC_APB1ENR_I2C1EN}
	I2C2 = Clock{APB1, stm32f411.RCC_APB1ENR_I2C2EN}
)

// Registers are the RCC enable registers.
type Registers struct {
	AHB1ENR mmio.Register32
	APB1ENR mmio.Register32
	APB2ENR mmio.Register32
}

// Gate switches peripheral clocks. There is one RCC per chip; share the Gate.
type Gate struct {
	regs Registers
}

// New returns a Gate over the given RCC registers.
func New(regs Registers) *Gate {
	return &Gate{regs: regs}
}

func (g *Gate) reg(b BusID) mmio.Register32 {
	switch b {
	case AHB1:
		return g.regs.AHB1ENR
	case APB2:
		return g.regs.APB2ENR
	default:
		return g.regs.APB1ENR
	}
}

// Enable sets the clock bit. The register is read back once so the write has
// reached the peripheral bus before the caller touches the peripheral.
func (g *Gate) Enable(c Clock) {
	r := g.reg(c.Bus)
	r.SetBits(mmio.Bit(c.Bit))
	_ = r.Get()
}

// EnableSettled enables the clock and then spins for cycles iterations.
func (g *Gate) EnableSettled(c Clock, cycles uint32) {
	g.Enable(c)
	timex.Spin(cycles)
}

// Disable clears the clock bit.
func (g *Gate) Disable(c Clock) {
	g.reg(c.Bus).ClearBits(mmio.Bit(c.Bit))
}

// Enabled reports whether the clock bit is set.
func (g *Gate) Enabled(c Clock) bool {
	return g.reg(c.Bus).HasBits(mmio.Bit(c.Bit))
}
