// chessticle replays chess moves under the full rules of the game and
// reports the resulting position, or counts move-tree nodes with perft.
package main

import (
	"bufio"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chessticle-go/internal/config"
	"github.com/lgbarn/chessticle-go/internal/engine"
	"github.com/lgbarn/chessticle-go/internal/errors"
	"github.com/lgbarn/chessticle-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessticle version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if cfg.LogFilename == "" {
		return
	}
	file, err := os.Create(cfg.LogFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// run sets up the game, replays the configured moves and writes the
// report. stdin is read only when the moves file is "-".
func run(cfg *config.Config, stdin io.Reader) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	if err := replay(cfg, g, stdin); err != nil {
		return err
	}

	if cfg.PerftDepth > 0 {
		return reportPerft(cfg, g)
	}
	return reportPosition(cfg, g)
}

// newGame creates the starting position.
func newGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.FEN == "" {
		return engine.NewGame(), nil
	}
	g, err := engine.NewGameFromFEN(cfg.FEN)
	if err != nil {
		return nil, err
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Starting from %s\n", g.FEN())
	}
	return g, nil
}

// replay plays the moves given inline or read from the moves file.
func replay(cfg *config.Config, g *engine.Game, stdin io.Reader) error {
	switch {
	case cfg.Moves != "":
		moves, err := engine.ParseMoveList(cfg.Moves)
		if err != nil {
			return err
		}
		_, err = g.PlayMoves(moves)
		logReplay(cfg, g)
		return err

	case cfg.ReadsStdin():
		return replayReader(cfg, g, stdin, "stdin")

	case cfg.MovesFile != "":
		file, err := os.Open(cfg.MovesFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return errors.Wrapf(err, "opening moves file %s", cfg.MovesFile)
		}
		defer file.Close() //nolint:errcheck // read-only file

		return replayReader(cfg, g, file, cfg.MovesFile)
	}
	return nil
}

// replayReader plays moves line by line. A refused move is reported with
// the file name and line it came from.
func replayReader(cfg *config.Config, g *engine.Game, r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		moves, err := engine.ParseMoveList(scanner.Text())
		if err != nil {
			return &errors.MoveError{Err: err, File: name, Line: line}
		}
		if _, err := g.PlayMoves(moves); err != nil {
			logReplay(cfg, g)
			return locate(err, name, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	logReplay(cfg, g)
	return nil
}

// locate records the file and line on the *errors.MoveError in err's chain.
func locate(err error, name string, line int) error {
	var me *errors.MoveError
	if stderrors.As(err, &me) {
		me.File = name
		me.Line = line
	}
	return err
}

func logReplay(cfg *config.Config, g *engine.Game) {
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Replayed %d ply(s)\n", g.Ply())
	}
}

// reportPosition writes the position in the configured form.
func reportPosition(cfg *config.Config, g *engine.Game) error {
	if err := output.NewPositionWriter(cfg).WritePosition(g); err != nil {
		return errors.Wrap(err, "writing position")
	}
	return nil
}

// reportPerft writes the node count, split by root move with -divide.
func reportPerft(cfg *config.Config, g *engine.Game) error {
	w := cfg.OutputFile
	start := time.Now()

	var nodes uint64
	if cfg.Divide {
		entries, err := g.PerftDivide(cfg.PerftDepth, cfg.Workers)
		if err != nil {
			return errors.Wrap(err, "perft divide")
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
		}
		nodes = engine.DivideTotal(entries)
		fmt.Fprintf(w, "\nMoves: %d\n", len(entries))
	} else {
		nodes = g.Perft(cfg.PerftDepth)
	}
	fmt.Fprintf(w, "Nodes: %d\n", nodes)

	if cfg.Verbosity > 1 {
		elapsed := time.Since(start)
		fmt.Fprintf(cfg.LogFile, "perft(%d) took %v", cfg.PerftDepth, elapsed)
		if s := elapsed.Seconds(); s > 0 {
			fmt.Fprintf(cfg.LogFile, " (%.0f nodes/s)", float64(nodes)/s)
		}
		fmt.Fprintln(cfg.LogFile)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessticle [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess moves and reports the resulting position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput forms (-W):\n")
	fmt.Fprintf(os.Stderr, "  board  Diagram, rank 8 first (default)\n")
	fmt.Fprintf(os.Stderr, "  fen    Forsyth-Edwards Notation\n")
	fmt.Fprintf(os.Stderr, "  moves  Legal moves of the side to move\n")
	fmt.Fprintf(os.Stderr, "  json   Position report as JSON\n")
	fmt.Fprintf(os.Stderr, "\nMoves use coordinate notation (e2e4, e7e8q); move numbers are skipped.\n")
}
