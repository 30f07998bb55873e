package i2c

import (
	"f411hal/device/stm32f411"
	"f411hal/mmio"
)

// Registers is the register set of one I2C unit.
type Registers struct {
	CR1   mmio.Register32
	CR2   mmio.Register32
	OAR1  mmio.Register32
	OAR2  mmio.Register32
	DR    mmio.Register32
	SR1   mmio.Register32
	SR2   mmio.Register32
	CCR   mmio.Register32
	TRISE mmio.Register32
}

var (
	cr1PE        = mmio.Bit(stm32f411.I2C_CR1_PE)
	cr1ENGC      = mmio.Bit(stm32f411.I2C_CR1_ENGC)
	cr1NOSTRETCH = mmio.Bit(stm32f411.I2C_CR1_NOSTRETCH)
	cr1START     = mmio.Bit(stm32f411.I2C_CR1_START)
	cr1STOP      = mmio.Bit(stm32f411.I2C_CR1_STOP)
	cr1ACK       = mmio.Bit(stm32f411.I2C_CR1_ACK)

	sr1SB   = mmio.Bit(stm32f411.I2C_SR1_SB)
	sr1ADDR = mmio.Bit(stm32f411.I2C_SR1_ADDR)
	sr1BTF  = mmio.Bit(stm32f411.I2C_SR1_BTF)
	sr1RXNE = mmio.Bit(stm32f411.I2C_SR1_RXNE)
	sr1TXE  = mmio.Bit(stm32f411.I2C_SR1_TXE)
	sr1BERR = mmio.Bit(stm32f411.I2C_SR1_BERR)
	sr1ARLO = mmio.Bit(stm32f411.I2C_SR1_ARLO)
	sr1AF   = mmio.Bit(stm32f411.I2C_SR1_AF)
	sr1OVR  = mmio.Bit(stm32f411.I2C_SR1_OVR)

	// SR1 error flags are rc_w0: writing 0 clears, writing 1 leaves them.
	sr1Errors = sr1BERR | sr1ARLO | sr1AF | sr1OVR

	// OAR1 bit 14 must be kept at 1 by software.
	oar1Keep = mmio.Bit(14)
)

func (r Registers) enable()  { r.CR1.SetBits(cr1PE) }
func (r Registers) disable() { r.CR1.ClearBits(cr1PE) }

func (r Registers) generateStart() { r.CR1.SetBits(cr1START) }
func (r Registers) generateStop()  { r.CR1.SetBits(cr1STOP) }

func (r Registers) setAck(on bool) {
	if on {
		r.CR1.SetBits(cr1ACK)
	} else {
		r.CR1.ClearBits(cr1ACK)
	}
}

// clearAddr completes the address phase. Reading SR2 after SR1 is what
// releases the ADDR flag; skipping it stalls the bus with SCL held low.
func (r Registers) clearAddr() { _ = r.SR2.Get() }

func (r Registers) clearErrors(flags uint32) { r.SR1.Set(^(flags & sr1Errors)) }

func (r Registers) applyTiming(t Timing) {
	fieldFreq.Set(r.CR2, t.Freq)
	r.CCR.Set(t.CCR())
	fieldTrise.Set(r.TRISE, t.Trise)
}

func (r Registers) setOwnAddress(addr uint8) {
	r.OAR1.Set(oar1Keep | uint32(addr&0x7F)<<stm32f411.I2C_OAR1_ADD7_Pos)
}
