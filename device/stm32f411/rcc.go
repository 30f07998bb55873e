package stm32f411

// RCC register offsets.
const (
	RCC_AHB1ENR = 0x30
	RCC_APB1ENR = 0x40
	RCC_APB2ENR = 0x44
)

// RCC_APB1ENR bit positions.
const (
	RCC_APB1ENR_TIM2EN   = 0
	RCC_APB1ENR_WWDGEN   = 11
	RCC_APB1ENR_SPI2EN   = 14
	RCC_APB1ENR_SPI3EN   = 15
	RCC_APB1ENR_USART2EN = 17
	RCC_APB1ENR_I2C1EN   = 21
	RCC_APB1ENR_I2C2EN   = 22
	RCC_APB1ENR_I2C3EN   = 23
	RCC_APB1ENR_PWREN    = 28
)
