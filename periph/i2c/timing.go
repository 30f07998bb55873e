package i2c

import (
	"f411hal/device/stm32f411"
	"f411hal/errcode"
	"f411hal/mmio"
	"f411hal/x/mathx"
)

var (
	fieldFreq  = mmio.Field{Pos: stm32f411.I2C_CR2_FREQ_Pos, Width: stm32f411.I2C_CR2_FREQ_Width}
	fieldCCR   = mmio.Field{Pos: stm32f411.I2C_CCR_CCR_Pos, Width: stm32f411.I2C_CCR_CCR_Width}
	fieldTrise = mmio.Field{Pos: stm32f411.I2C_TRISE_Pos, Width: stm32f411.I2C_TRISE_Width}
)

// FREQ accepts 2..50 MHz.
const (
	minFreqMHz = 2
	maxFreqMHz = 50
)

// Timing holds the register values derived from a bus speed.
type Timing struct {
	Freq    uint32 // CR2.FREQ, input clock in MHz
	Divisor uint32 // CCR.CCR
	Fast    bool   // CCR.FS
	Duty    Duty   // CCR.DUTY, fast mode only
	Trise   uint32 // TRISE, maximum SCL rise time in input clock periods + 1
}

// CCR returns the full clock-control register word.
func (t Timing) CCR() uint32 {
	w := t.Divisor & fieldCCR.Mask()
	if t.Fast {
		w |= mmio.Bit(stm32f411.I2C_CCR_FS)
		if t.Duty == Duty16_9 {
			w |= mmio.Bit(stm32f411.I2C_CCR_DUTY)
		}
	}
	return w
}

// SCL returns the SCL frequency the divisor produces from pclk.
func (t Timing) SCL(pclk uint32) uint32 {
	if t.Divisor == 0 {
		return 0
	}
	return pclk / (t.periods() * t.Divisor)
}

// periods is the number of divisor units in one SCL period.
func (t Timing) periods() uint32 {
	switch {
	case !t.Fast:
		return 2
	case t.Duty == Duty16_9:
		return 25
	default:
		return 3
	}
}

// ComputeTiming derives FREQ, CCR and TRISE for speed Hz from a pclk Hz input
// clock. The divisor is rounded down, so SCL never exceeds speed. A divisor
// that does not fit the 12-bit CCR field is rejected.
func ComputeTiming(pclk, speed uint32, duty Duty) (Timing, error) {
	if speed == 0 || speed > FastMode {
		return Timing{}, errcode.InvalidParams
	}
	mhz := pclk / 1_000_000
	if !mathx.Between(mhz, minFreqMHz, maxFreqMHz) {
		return Timing{}, errcode.InvalidParams
	}

	t := Timing{Freq: mhz}
	if speed <= StandardMode {
		t.Trise = mhz + 1
	} else {
		t.Fast = true
		t.Duty = duty
		t.Trise = mhz*300/1000 + 1
	}
	t.Divisor = pclk / (t.periods() * speed)
	if !mathx.Between(t.Divisor, 1, mathx.FieldMax[uint32](fieldCCR.Width)) {
		return Timing{}, errcode.InvalidParams
	}
	return t, nil
}
