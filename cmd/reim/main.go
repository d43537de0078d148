// Command reim runs the streaming vocoder over WAV files.
//
// Usage:
//
//	reim [flags] <command> [args]
//
// Commands:
//
//	process   - analyse and resynthesize a WAV file
//	analyze   - print the per-frame fo and voicing decisions
//	backends  - list the available FFT backends
//
// Examples:
//
//	reim process in.wav out.wav --rate 48000
//	reim analyze in.wav --format yaml
//	reim --preset voice.yaml --backend gonum process in.wav out.wav
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-vocoder/cmd/reim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
