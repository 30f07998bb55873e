package stm32f411

// I2C register offsets.
const (
	I2C_CR1   = 0x00
	I2C_CR2   = 0x04
	I2C_OAR1  = 0x08
	I2C_OAR2  = 0x0C
	I2C_DR    = 0x10
	I2C_SR1   = 0x14
	I2C_SR2   = 0x18
	I2C_CCR   = 0x1C
	I2C_TRISE = 0x20
)

// CR1 bits.
const (
	I2C_CR1_PE        = 0
	I2C_CR1_SMBUS     = 1
	I2C_CR1_SMBTYPE   = 3
	I2C_CR1_ENARP     = 4
	I2C_CR1_ENPEC     = 5
	I2C_CR1_ENGC      = 6
	I2C_CR1_NOSTRETCH = 7
	I2C_CR1_START     = 8
	I2C_CR1_STOP      = 9
	I2C_CR1_ACK       = 10
	I2C_CR1_POS       = 11
	I2C_CR1_PEC       = 12
	I2C_CR1_ALERT     = 13
	I2C_CR1_SWRST     = 15
)

// CR2 fields.
const (
	I2C_CR2_FREQ_Pos   = 0
	I2C_CR2_FREQ_Width = 6
	I2C_CR2_ITERREN    = 8
	I2C_CR2_ITEVTEN    = 9
	I2C_CR2_ITBUFEN    = 10
	I2C_CR2_DMAEN      = 11
	I2C_CR2_LAST       = 12
)

// OAR1 fields.
const (
	I2C_OAR1_ADD7_Pos = 1
	I2C_OAR1_ADDMODE  = 15
)

// SR1 bits.
const (
	I2C_SR1_SB       = 0
	I2C_SR1_ADDR     = 1
	I2C_SR1_BTF      = 2
	I2C_SR1_ADD10    = 3
	I2C_SR1_STOPF    = 4
	I2C_SR1_RXNE     = 6
	I2C_SR1_TXE      = 7
	I2C_SR1_BERR     = 8
	I2C_SR1_ARLO     = 9
	I2C_SR1_AF       = 10
	I2C_SR1_OVR      = 11
	I2C_SR1_PECERR   = 12
	I2C_SR1_TIMEOUT  = 14
	I2C_SR1_SMBALERT = 15
)

// SR2 bits.
const (
	I2C_SR2_MSL     = 0
	I2C_SR2_BUSY    = 1
	I2C_SR2_TRA     = 2
	I2C_SR2_GENCALL = 4
	I2C_SR2_DUALF   = 7
)

// CCR fields.
const (
	I2C_CCR_CCR_Pos   = 0
	I2C_CCR_CCR_Width = 12
	I2C_CCR_DUTY      = 14
	I2C_CCR_FS        = 15
)

// TRISE field.
const (
	I2C_TRISE_Pos   = 0
	I2C_TRISE_Width = 6
)
