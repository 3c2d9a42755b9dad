package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-irdetect/internal/capture"
	"github.com/jangala-dev/tinygo-irdetect/irdetect"
)

func newEncodeCmd() *cobra.Command {
	var (
		timing    capture.Timing
		start     uint32
		intervals bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "encode <name|value>...",
		Short: "Write the falling-edge capture a remote would produce for the given commands",
		Example: `  irtool encode LEFT ON-OFF > presses.txt
  irtool encode 0x00ff --intervals --zero 560 --one 1690`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := timing.Validate(); err != nil {
				return err
			}
			cmds := make([]irdetect.Command, 0, len(args))
			for _, a := range args {
				v, err := labels.Parse(a)
				if err != nil {
					return err
				}
				cmds = append(cmds, v)
			}

			c := capture.Capture{Mode: capture.ModeTimestamps, Values: capture.Encode(cmds, start, timing)}
			if intervals {
				c.Mode = capture.ModeIntervals
				c.Values = capture.Intervals(c.Values)
			}

			if output == "" || output == "-" {
				return capture.Write(cmd.OutOrStdout(), c)
			}
			return writeCaptureFile(output, c)
		},
	}
	cmd.Flags().Uint32Var(&timing.Zero, "zero", capture.DefaultTiming.Zero, "Gap for a zero bit (µs)")
	cmd.Flags().Uint32Var(&timing.One, "one", capture.DefaultTiming.One, "Gap for a one bit (µs)")
	cmd.Flags().Uint32Var(&timing.Gap, "gap", capture.DefaultTiming.Gap, "Gap that starts a frame (µs)")
	cmd.Flags().Uint32Var(&start, "start", 0, "Timestamp the first frame gap is measured from (µs)")
	cmd.Flags().BoolVar(&intervals, "intervals", false, "Write gaps between edges instead of timestamps")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of standard output")
	return cmd
}

// createFile is replaced in tests.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeCaptureFile writes c to path. A failed Close is reported, since that is
// where a short write to disk shows up.
func writeCaptureFile(path string, c capture.Capture) error {
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("irtool: create capture: %w", err)
	}
	if err := capture.Write(f, c); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("irtool: close capture: %w", err)
	}
	return nil
}
