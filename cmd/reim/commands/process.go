package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vocoder/internal/wavio"
	"github.com/cwbudde/algo-vocoder/vocoder/stream"
)

type processFlags struct {
	block int
	rate  float64
}

func newProcessCommand(g *globalFlags) *cobra.Command {
	var f processFlags

	cmd := &cobra.Command{
		Use:   "process <in.wav> <out.wav>",
		Short: "Analyse and resynthesize a WAV file",
		Long: `Analyse and resynthesize a WAV file.

The first channel of the input is resampled to --rate when needed and
streamed through a vocoder session block by block. The output is written
as 16-bit mono PCM at the processing rate.

Examples:
  reim process speech.wav resynth.wav
  reim process speech.wav resynth.wav --rate 16000 --block 256`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.process(cmd, args[0], args[1], f)
		},
	}

	cmd.Flags().IntVar(&f.block, "block", 4096, "processing block size in samples")
	cmd.Flags().Float64Var(&f.rate, "rate", 48000, "processing sample rate in Hz (0 keeps the input rate)")

	return cmd
}

func (g *globalFlags) process(cmd *cobra.Command, inPath, outPath string, f processFlags) error {
	in, err := wavio.ReadFile(inPath)
	if err != nil {
		return err
	}

	rate := f.rate
	if rate == 0 {
		rate = in.SampleRate
	}

	samples, err := wavio.Resample(in.Samples, in.SampleRate, rate)
	if err != nil {
		return err
	}

	cfg, err := g.buildConfig(cmd, rate)
	if err != nil {
		return err
	}

	session, err := stream.NewSession(cfg, f.block)
	if err != nil {
		return err
	}

	out := make([]float64, len(samples))
	for start := 0; start < len(samples); start += f.block {
		end := min(start+f.block, len(samples))
		if err := session.ProcessBlock(out[start:end], samples[start:end]); err != nil {
			return fmt.Errorf("process block at %d: %w", start, err)
		}
	}

	cfg.Logger().Info("processed",
		slog.String("in", inPath),
		slog.String("out", outPath),
		slog.Float64("seconds", float64(len(samples))/rate),
		slog.Int("frames", session.Frames()),
	)

	if err := session.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}

	return wavio.WriteFile(outPath, &wavio.Signal{SampleRate: rate, BitDepth: 16, Samples: out})
}
