// Package stm32f411 is the register map of the STM32F411 peripherals the HAL
// drives: base addresses, register offsets and bit positions. It holds no
// behaviour.
package stm32f411

// Bus base addresses.
const (
	PeriphBase uintptr = 0x4000_0000
	APB1Base           = PeriphBase
	APB2Base           = PeriphBase + 0x0001_0000
	AHB1Base           = PeriphBase + 0x0002_0000
)

// Peripheral base addresses.
const (
	I2C1Base = APB1Base + 0x5400
	I2C2Base = APB1Base + 0x5800
	RCCBase  = AHB1Base + 0x3800
)

// HSIClock is the reset-default SYSCLK and PCLK1 frequency.
const HSIClock uint32 = 16_000_000
