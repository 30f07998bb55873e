package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"f411hal/device/stm32f411"
	"f411hal/errcode"
	"f411hal/periph/i2c"
)

type timingOpts struct {
	pclk  uint32
	speed uint32
	duty  string
}

// sweepSpeeds are the bus speeds listed by the sweep command.
var sweepSpeeds = []uint32{10_000, 50_000, 100_000, 200_000, 300_000, 400_000}

func parseDuty(s string) (i2c.Duty, error) {
	switch s {
	case "2:1", "2":
		return i2c.Duty2, nil
	case "16:9":
		return i2c.Duty16_9, nil
	}
	return 0, &errcode.E{C: errcode.InvalidParams, Op: "duty", Msg: fmt.Sprintf("%q is not 2:1 or 16:9", s)}
}

func newRootCmd() *cobra.Command {
	opts := timingOpts{}

	rootCmd := &cobra.Command{
		Use:          "i2ctiming",
		Short:        "Compute STM32F411 I2C timing registers",
		Long:         "Compute the CR2.FREQ, CCR and TRISE register values for an I2C bus speed from the APB1 clock.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			duty, err := parseDuty(opts.duty)
			if err != nil {
				return err
			}
			t, err := i2c.ComputeTiming(opts.pclk, opts.speed, duty)
			if err != nil {
				return errcode.Wrap(fmt.Sprintf("%d Hz from %d Hz", opts.speed, opts.pclk), err)
			}
			printTiming(cmd.OutOrStdout(), opts.pclk, t)
			return nil
		},
	}
	rootCmd.PersistentFlags().Uint32VarP(&opts.pclk, "pclk", "p", stm32f411.HSIClock, "APB1 peripheral clock in Hz")
	rootCmd.PersistentFlags().StringVarP(&opts.duty, "duty", "d", "2:1", "fast-mode duty cycle (2:1 or 16:9)")
	rootCmd.Flags().Uint32VarP(&opts.speed, "speed", "s", i2c.StandardMode, "bus speed in Hz")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "List timing values for common bus speeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			duty, err := parseDuty(opts.duty)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%8s %5s %7s %6s %8s\n", "SPEED", "FREQ", "CCR", "TRISE", "SCL")
			for _, speed := range sweepSpeeds {
				t, err := i2c.ComputeTiming(opts.pclk, speed, duty)
				if err != nil {
					fmt.Fprintf(out, "%8d %s\n", speed, errcode.Of(err))
					continue
				}
				fmt.Fprintf(out, "%8d %5d %#07x %6d %8d\n", speed, t.Freq, t.CCR(), t.Trise, t.SCL(opts.pclk))
			}
			return nil
		},
	}
	rootCmd.AddCommand(sweepCmd)

	return rootCmd
}

func printTiming(w io.Writer, pclk uint32, t i2c.Timing) {
	mode := "standard"
	if t.Fast {
		mode = "fast, duty " + t.Duty.String()
	}
	fmt.Fprintf(w, "mode   %s\n", mode)
	fmt.Fprintf(w, "FREQ   %d\n", t.Freq)
	fmt.Fprintf(w, "CCR    %#06x (divisor %d)\n", t.CCR(), t.Divisor)
	fmt.Fprintf(w, "TRISE  %d\n", t.Trise)
	fmt.Fprintf(w, "SCL    %d Hz\n", t.SCL(pclk))
}
