// Package config holds the settings of the chessticle command.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessticle-go/internal/errors"
)

// MaxPerftDepth bounds the -perft flag. Depth 7 from the start position
// already visits over three billion nodes.
const MaxPerftDepth = 8

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=outcome summary, 2=running commentary

	// Position setup
	FEN       string // Starting position; empty means the initial position
	Moves     string // Moves to replay, coordinate notation
	MovesFile string // File to read moves from; "-" is stdin

	// Output
	Output     OutputForm
	Colour     ColourMode
	LineLength int // Wrap width of the moves form

	// Perft
	PerftDepth int
	Divide     bool
	Workers    int

	// File names as given on the command line, resolved by the caller
	OutputFilename string
	LogFilename    string

	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     BoardOutput,
		Colour:     ColourAuto,
		LineLength: 80,
		Workers:    runtime.NumCPU(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the settings are consistent with each other.
// Every returned error wraps errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if !c.Output.valid() {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output form %d", c.Output)
	}
	if !c.Colour.valid() {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown colour mode %d", c.Colour)
	}
	if c.LineLength < 8 {
		return errors.Wrapf(errors.ErrInvalidConfig, "line length %d too short", c.LineLength)
	}
	if c.PerftDepth < 0 || c.PerftDepth > MaxPerftDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d not in [0, %d]", c.PerftDepth, MaxPerftDepth)
	}
	if c.Divide && c.PerftDepth == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "divide needs a perft depth")
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be positive, got %d", c.Workers)
	}
	if c.Moves != "" && c.MovesFile != "" {
		return errors.Wrap(errors.ErrInvalidConfig, "moves given both inline and by file")
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing output or log writer")
	}
	return nil
}

// ReadsStdin reports whether moves come from standard input.
func (c *Config) ReadsStdin() bool {
	return c.MovesFile == "-"
}
