// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessticle-go/internal/config"
)

var (
	// Position setup
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	movesFlag = flag.String("moves", "", "Moves to replay in coordinate notation (e.g. \"e2e4 e7e5\")")
	movesFile = flag.String("f", "", "File of moves to replay (\"-\" for stdin)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", "board", "Output form: board, fen, moves, json")
	colourFlag   = flag.String("color", "auto", "Board colours: auto, always, never")
	lineLength   = flag.Int("w", 80, "Maximum line length of the moves form")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to depth N")
	divide     = flag.Bool("divide", false, "Split perft counts by root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Verbose diagnostics")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no status line)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyPositionFlags configures the starting position and moves.
func applyPositionFlags(cfg *config.Config) {
	cfg.FEN = *fenFlag
	cfg.Moves = *movesFlag
	cfg.MovesFile = *movesFile
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.PerftDepth = *perftDepth
	cfg.Divide = *divide
	if *workers > 0 {
		cfg.Workers = *workers
	}
}

// applyOutputFlags configures the output form and colour mode.
func applyOutputFlags(cfg *config.Config) error {
	form, err := config.ParseOutputForm(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output = form
	cfg.LineLength = *lineLength

	mode, err := config.ParseColourMode(*colourFlag)
	if err != nil {
		return err
	}
	cfg.Colour = mode
	return nil
}
