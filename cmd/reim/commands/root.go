// Package commands implements the reim command tree.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vocoder/dsp/fft"
	"github.com/cwbudde/algo-vocoder/internal/preset"
	"github.com/cwbudde/algo-vocoder/vocoder"
)

type globalFlags struct {
	preset  string
	backend string
	verbose bool
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   "reim",
		Short: "Streaming vocoder",
		Long: `Streaming vocoder.

Decomposes speech into fo, aperiodicity and spectral envelope frame by
frame and resynthesizes it, exactly as a real-time session would.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&g.preset, "preset", "", "YAML preset with vocoder parameters")
	root.PersistentFlags().StringVar(&g.backend, "backend", "", "FFT backend (overrides the preset)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug information to stderr")

	root.AddCommand(
		newProcessCommand(&g),
		newAnalyzeCommand(&g),
		newBackendsCommand(),
	)

	return root
}

// Execute runs the command tree with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildConfig merges the preset, the backend flag and the logger into a
// vocoder configuration for sampleRate.
func (g *globalFlags) buildConfig(cmd *cobra.Command, sampleRate float64) (*vocoder.Config, error) {
	var opts []vocoder.Option

	if g.preset != "" {
		p, err := preset.LoadFile(g.preset)
		if err != nil {
			return nil, err
		}

		popts, err := p.Options()
		if err != nil {
			return nil, err
		}

		opts = append(opts, popts...)
	}

	if g.backend != "" {
		b, err := fft.ParseBackend(g.backend)
		if err != nil {
			return nil, err
		}

		opts = append(opts, vocoder.WithBackend(b))
	}

	logger := newLogger(cmd.ErrOrStderr(), g.verbose)
	opts = append(opts, vocoder.WithLogger(logger))

	cfg, err := vocoder.New(sampleRate, opts...)
	if err != nil {
		return nil, fmt.Errorf("configure vocoder: %w", err)
	}

	return cfg, nil
}
