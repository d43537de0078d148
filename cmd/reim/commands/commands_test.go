package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-vocoder/dsp/fft"
	"github.com/cwbudde/algo-vocoder/internal/testutil"
	"github.com/cwbudde/algo-vocoder/internal/wavio"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func writeTone(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tone.wav")
	sig := &wavio.Signal{
		SampleRate: 16000,
		Samples:    testutil.DeterministicSine(220, 16000, 0.5, 8000),
	}

	if err := wavio.WriteFile(path, sig); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestBackendsCommand(t *testing.T) {
	out, err := run(t, "backends")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "* "+string(fft.DefaultBackend)) {
		t.Fatalf("default backend not marked:\n%s", out)
	}

	if got := strings.Count(out, "\n"); got != len(fft.Backends()) {
		t.Fatalf("listed %d backends, want %d", got, len(fft.Backends()))
	}
}

func TestAnalyzeCSV(t *testing.T) {
	in := writeTone(t)

	out, err := run(t, "analyze", in)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "time,fo,voiced,silent,centroid,flatness" {
		t.Fatalf("header = %q", lines[0])
	}

	// 8000 samples at one frame per 80 samples.
	if len(lines) != 101 {
		t.Fatalf("got %d rows, want 100 frames plus header", len(lines))
	}

	if !strings.HasPrefix(lines[1], "0.0000,") {
		t.Fatalf("first frame row = %q", lines[1])
	}
}

func TestAnalyzeYAML(t *testing.T) {
	in := writeTone(t)

	out, err := run(t, "analyze", in, "--format", "yaml", "--backend", string(fft.BackendGonum))
	if err != nil {
		t.Fatal(err)
	}

	var records []frameRecord
	if err := yaml.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}

	if len(records) != 100 {
		t.Fatalf("got %d records, want 100", len(records))
	}

	last := records[len(records)-1]
	if !last.Voiced || last.Fo < 215 || last.Fo > 225 {
		t.Fatalf("last frame = %+v", last)
	}

	if last.Centroid <= 0 || last.Flatness < 0 || last.Flatness > 1 {
		t.Fatalf("envelope descriptors = %+v", last)
	}
}

func TestAnalyzeRejectsFormat(t *testing.T) {
	if _, err := run(t, "analyze", writeTone(t), "--format", "json"); err == nil {
		t.Fatal("json format accepted")
	}
}

func TestProcessCommand(t *testing.T) {
	in := writeTone(t)
	outPath := filepath.Join(t.TempDir(), "out.wav")

	presetPath := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(presetPath, []byte("fft_size: 1024\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "--preset", presetPath, "process", in, outPath, "--rate", "0", "--block", "512"); err != nil {
		t.Fatal(err)
	}

	got, err := wavio.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}

	if got.SampleRate != 16000 || len(got.Samples) != 8000 {
		t.Fatalf("rate=%g len=%d", got.SampleRate, len(got.Samples))
	}
}

func TestUnknownBackend(t *testing.T) {
	_, err := run(t, "--backend", "fftw", "analyze", writeTone(t))
	if !errors.Is(err, fft.ErrUnknownBackend) {
		t.Fatalf("error = %v, want ErrUnknownBackend", err)
	}
}
