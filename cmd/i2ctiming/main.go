// i2ctiming prints the CR2.FREQ, CCR and TRISE values the I2C driver
// programs for a bus speed, and the SCL frequency they produce.
//
//	i2ctiming --pclk 42000000 --speed 400000 --duty 16:9
//	i2ctiming sweep --pclk 16000000
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
