package main

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-irdetect/internal/monitor"
)

func newMonitorCmd() *cobra.Command {
	var (
		demo     bool
		speed    float64
		interval time.Duration
		noise    float64
	)

	cmd := &cobra.Command{
		Use:   "monitor [--demo | file]",
		Short: "Show decoded presses live in the terminal",
		Long: `Show decoded presses live in the terminal.

With --demo, a simulated remote presses random buttons. Otherwise the capture in
file (or standard input for "-") is replayed at --speed times its recorded pace.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src monitor.Source
			switch {
			case demo && len(args) > 0:
				return errors.New("irtool: --demo and a capture file are mutually exclusive")
			case demo:
				src = monitor.DemoSource{Labels: labels, Interval: interval, Noise: noise}
			case len(args) == 1:
				c, err := readCapture(cmd.InOrStdin(), args[0])
				if err != nil {
					return err
				}
				src = monitor.ReplaySource{Label: args[0], Timestamps: c.Timestamps(), Speed: speed}
			default:
				return errors.New("irtool: monitor needs --demo or a capture file")
			}

			return monitor.Run(cmd.Context(), src, labels, tea.WithAltScreen())
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "Simulate a remote instead of replaying a capture")
	cmd.Flags().Float64Var(&speed, "speed", 1, "Replay speed multiplier")
	cmd.Flags().DurationVar(&interval, "interval", 700*time.Millisecond, "Pause between simulated presses")
	cmd.Flags().Float64Var(&noise, "noise", 0.1, "Fraction of simulated presses that are unknown words")
	return cmd
}
