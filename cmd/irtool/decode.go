package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-irdetect/internal/capture"
	"github.com/jangala-dev/tinygo-irdetect/internal/ui"
	"github.com/jangala-dev/tinygo-irdetect/irdetect"
)

func newDecodeCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Replay a capture through the decoder and print each command",
		Long: `Replay a capture through the decoder and print each decoded command.
Reads standard input when file is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			c, err := readCapture(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			ts := c.Timestamps()
			cmds := capture.Replay(irdetect.NewDetector(), ts)
			slog.Debug("irtool: capture replayed", "path", path, "mode", c.Mode, "edges", len(ts), "commands", len(cmds))

			out := cmd.OutOrStdout()
			unknown := 0
			for _, v := range cmds {
				if _, ok := labels.Lookup(v); !ok {
					unknown++
				}
				fmt.Fprintln(out, ui.CommandLine(labels, v, plain))
			}
			if unknown > 0 {
				slog.Info("irtool: words not in label table", "count", unknown)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styled output")
	return cmd
}

func readCapture(stdin io.Reader, path string) (capture.Capture, error) {
	if path == "-" {
		return capture.Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return capture.Capture{}, fmt.Errorf("irtool: open capture: %w", err)
	}
	defer f.Close()
	c, err := capture.Read(f)
	if err != nil {
		return capture.Capture{}, fmt.Errorf("irtool: %s: %w", path, err)
	}
	return c, nil
}
