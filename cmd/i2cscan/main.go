//go:build tinygo && stm32f411

// i2cscan brings up I2C1 on PB6 (SCL) and PB7 (SDA) and reports every 7-bit
// address that acknowledges, then dumps the first bytes of a 24Cxx EEPROM if
// one answers at 0x50.
package main

import (
	"machine"
	"time"

	"f411hal/drivers/eeprom24"
	"f411hal/errcode"
	"f411hal/periph/i2c"
	"f411hal/periph/rcc"
	"f411hal/x/conv"
)

const (
	afI2C1 = 4 // AF4: I2C1..3 on port B

	firstAddr = 0x08
	lastAddr  = 0x77
)

func main() {
	time.Sleep(1500 * time.Millisecond)
	println("[i2cscan] boot")

	machine.PB6.ConfigureAltFunc(machine.PinConfig{Mode: machine.PinModeI2CSCL}, afI2C1)
	machine.PB7.ConfigureAltFunc(machine.PinConfig{Mode: machine.PinModeI2CSDA}, afI2C1)

	bus := i2c.New(i2c.I2C1, i2c.I2C1.Registers(), rcc.Default())
	if err := bus.Configure(i2c.Config{ClockSpeed: i2c.StandardMode}); err != nil {
		println("[i2cscan] configure:", err.Error())
		return
	}
	defer bus.Disable()

	var hb [4]byte
	found := 0
	eeprom := false
	for a := uint8(firstAddr); a <= lastAddr; a++ {
		err := bus.WriteBulk(a, nil)
		switch errcode.Of(err) {
		case errcode.OK:
			println("[i2cscan] device at", string(conv.U8Hex(hb[:], a)))
			found++
			if a == eeprom24.Address {
				eeprom = true
			}
		case errcode.AckFailure:
		default:
			// A stuck bus times out on every address.
			println("[i2cscan]", string(conv.U8Hex(hb[:], a)), err.Error())
			return
		}
	}
	println("[i2cscan] found", found, "device(s)")

	if !eeprom {
		return
	}
	d := eeprom24.New(bus)
	var buf [16]byte
	n, err := d.Read(buf[:])
	if err != nil {
		println("[i2cscan] eeprom read:", err.Error())
		return
	}
	println("[i2cscan] eeprom:", string(conv.AppendHex(nil, buf[:n])))
}
