//go:build tinygo && stm32f411

package rcc

import (
	"runtime/volatile"
	"unsafe"

	"f411hal/device/stm32f411"
)

func at(off uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(stm32f411.RCCBase + off))
}

// Default returns the Gate for the chip's RCC block.
func Default() *Gate {
	return New(Registers{
		AHB1ENR: at(stm32f411.RCC_AHB1ENR),
		APB1ENR: at(stm32f411.RCC_APB1ENR),
		APB2ENR: at(stm32f411.RCC_APB2ENR),
	})
}
