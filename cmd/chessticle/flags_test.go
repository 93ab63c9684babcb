package main

import (
	"testing"

	"github.com/lgbarn/chessticle-go/internal/config"
	"github.com/lgbarn/chessticle-go/internal/errors"
	"github.com/lgbarn/chessticle-go/internal/testutil"
)

// saveRestoreBool sets a bool flag pointer and returns a func restoring it.
// Usage: defer saveRestoreBool(quiet, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlagsDefaults(t *testing.T) {
	cfg := config.NewConfig()
	workersBefore := cfg.Workers
	testutil.AssertNoError(t, applyFlags(cfg))

	testutil.AssertEqual(t, cfg.Output, config.BoardOutput)
	testutil.AssertEqual(t, cfg.Colour, config.ColourAuto)
	testutil.AssertEqual(t, cfg.Verbosity, 1)
	testutil.AssertEqual(t, cfg.Workers, workersBefore, "workers flag 0 keeps the CPU count")
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyPositionFlags(t *testing.T) {
	defer saveRestoreString(fenFlag, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
	defer saveRestoreString(movesFlag, "e1e2")()
	defer saveRestoreString(movesFile, "")()

	cfg := config.NewConfig()
	applyPositionFlags(cfg)
	testutil.AssertEqual(t, cfg.FEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, cfg.Moves, "e1e2")
	testutil.AssertEqual(t, cfg.MovesFile, "")
}

func TestApplyPerftFlags(t *testing.T) {
	defer saveRestoreInt(perftDepth, 4)()
	defer saveRestoreBool(divide, true)()
	defer saveRestoreInt(workers, 3)()

	cfg := config.NewConfig()
	applyPerftFlags(cfg)
	testutil.AssertEqual(t, cfg.PerftDepth, 4)
	testutil.AssertTrue(t, cfg.Divide)
	testutil.AssertEqual(t, cfg.Workers, 3)
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("fen and never", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "fen")()
		defer saveRestoreString(colourFlag, "never")()
		defer saveRestoreInt(lineLength, 40)()
		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyOutputFlags(cfg))
		testutil.AssertEqual(t, cfg.LineLength, 40)
		testutil.AssertEqual(t, cfg.Output, config.FENOutput)
		testutil.AssertEqual(t, cfg.Colour, config.ColourNever)
	})

	t.Run("unknown form", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "san")()
		testutil.AssertErrorIs(t, applyOutputFlags(config.NewConfig()), errors.ErrInvalidConfig)
	})

	t.Run("unknown colour", func(t *testing.T) {
		defer saveRestoreString(colourFlag, "rainbow")()
		testutil.AssertErrorIs(t, applyOutputFlags(config.NewConfig()), errors.ErrInvalidConfig)
	})
}

func TestApplyFlagsVerbosity(t *testing.T) {
	tests := []struct {
		name           string
		quiet, verbose bool
		want           int
	}{
		{"default", false, false, 1},
		{"silent", true, false, 0},
		{"verbose", false, true, 2},
		{"silent wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			testutil.AssertNoError(t, applyFlags(cfg))
			testutil.AssertEqual(t, cfg.Verbosity, tt.want)
		})
	}
}

func TestApplyFlagsFileNames(t *testing.T) {
	defer saveRestoreString(outputFile, "out.txt")()
	defer saveRestoreString(logFile, "log.txt")()

	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))
	testutil.AssertEqual(t, cfg.OutputFilename, "out.txt")
	testutil.AssertEqual(t, cfg.LogFilename, "log.txt")
}
