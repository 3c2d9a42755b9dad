package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-irdetect/internal/ui"
)

func newLabelsCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List the known buttons and their command words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range labels.Commands() {
				fmt.Fprintln(out, ui.CommandLine(labels, v, plain))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styled output")
	return cmd
}
