package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vocoder/dsp/fft"
)

func newBackendsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available FFT backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, b := range fft.Backends() {
				marker := " "
				if b == fft.DefaultBackend {
					marker = "*"
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, b)
			}

			return nil
		},
	}
}
