package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-irdetect/irdetect"
)

// labels is the command table used by every subcommand.
var labels = irdetect.DefaultLabels

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "irtool",
		Short: "irtool - decode, synthesise and monitor SparkFun IR remote captures",
		Long: `irtool runs the irdetect decoder on the host.

Captures are text files of falling-edge timestamps (or, with a "# mode: intervals"
header, gaps between edges) in microseconds, one value per line. Use "encode" to
produce a capture for known buttons, "decode" to replay one through the decoder,
and "monitor" to watch decoded presses live.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newDecodeCmd(),
		newEncodeCmd(),
		newLabelsCmd(),
		newMonitorCmd(),
	)
	return rootCmd
}
