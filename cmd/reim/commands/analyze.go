package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-vocoder/internal/wavio"
	"github.com/cwbudde/algo-vocoder/stats/frequency"
	"github.com/cwbudde/algo-vocoder/vocoder/analysis"
	"github.com/cwbudde/algo-vocoder/vocoder/stream"
)

// frameRecord is one row of analyze output.
type frameRecord struct {
	Time   float64 `yaml:"time"`
	Fo     float64 `yaml:"fo"`
	Voiced bool    `yaml:"voiced"`
	Silent bool    `yaml:"silent"`

	Centroid float64 `yaml:"centroid"` // envelope centroid in Hz
	Flatness float64 `yaml:"flatness"` // envelope flatness, 0..1
}

func newAnalyzeCommand(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "analyze <in.wav>",
		Short: "Print per-frame fo and voicing",
		Long: `Print per-frame fo and voicing.

Runs the input at its own sample rate through a session and reports the
parameters of every analysed frame. Time is the frame position in seconds;
centroid and flatness describe the spectral envelope.

Examples:
  reim analyze speech.wav
  reim analyze speech.wav --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "yaml" {
				return fmt.Errorf("unknown format %q, want csv or yaml", format)
			}

			records, err := g.analyze(cmd, args[0])
			if err != nil {
				return err
			}

			if format == "yaml" {
				return writeYAML(cmd.OutOrStdout(), records)
			}

			return writeCSV(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or yaml")

	return cmd
}

func (g *globalFlags) analyze(cmd *cobra.Command, path string) ([]frameRecord, error) {
	in, err := wavio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := g.buildConfig(cmd, in.SampleRate)
	if err != nil {
		return nil, err
	}

	var (
		records []frameRecord
		pos     int
	)

	observe := stream.WithObserver(func(f analysis.Frame) {
		env := frequency.Describe(f.Sp, in.SampleRate)
		records = append(records, frameRecord{
			Time:     float64(pos) / in.SampleRate,
			Fo:       f.Fo,
			Voiced:   f.Voiced,
			Silent:   f.Silent,
			Centroid: env.Centroid,
			Flatness: env.Flatness,
		})
	})

	session, err := stream.NewSession(cfg, 1, observe)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	for i, x := range in.Samples {
		pos = i
		session.Process(x)
	}

	return records, nil
}

func writeCSV(w io.Writer, records []frameRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "fo", "voiced", "silent", "centroid", "flatness"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatFloat(r.Time, 'f', 4, 64),
			strconv.FormatFloat(r.Fo, 'f', 2, 64),
			strconv.FormatBool(r.Voiced),
			strconv.FormatBool(r.Silent),
			strconv.FormatFloat(r.Centroid, 'f', 1, 64),
			strconv.FormatFloat(r.Flatness, 'f', 4, 64),
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func writeYAML(w io.Writer, records []frameRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(records); err != nil {
		return err
	}

	return enc.Close()
}
