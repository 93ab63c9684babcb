package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessticle-go/internal/config"
	"github.com/lgbarn/chessticle-go/internal/engine"
	"github.com/lgbarn/chessticle-go/internal/errors"
	"github.com/lgbarn/chessticle-go/internal/testutil"
)

// newTestConfig returns a builder writing to out and log with colour off.
func newTestConfig(out, log *bytes.Buffer) *config.ConfigBuilder {
	return config.NewConfigBuilder().
		WithOutputFile(out).
		WithLogFile(log).
		WithColour(config.ColourNever).
		WithWorkers(2)
}

const initialDiagram = `8 r n b q k b n r
7 p p p p p p p p
6 . . . . . . . .
5 . . . . . . . .
4 . . . . . . . .
3 . . . . . . . .
2 P P P P P P P P
1 R N B Q K B N R
  a b c d e f g h
`

func TestRunInitialBoard(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).Build()

	testutil.AssertNoError(t, run(cfg, strings.NewReader("")))
	testutil.AssertEqual(t, out.String(), initialDiagram+"White to move\n")
	testutil.AssertEqual(t, log.String(), "")
}

func TestRunFoolsMate(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).
		WithMoves("1. f2f3 e7e5 2. g2g4 d8h4").
		WithOutputForm(config.FENOutput).
		Build()

	testutil.AssertNoError(t, run(cfg, nil))
	want := "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3\n" +
		"White to move, white checkmated 0-1\n"
	testutil.AssertEqual(t, out.String(), want)
}

func TestRunSilent(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).
		WithOutputForm(config.FENOutput).
		WithVerbosity(0).
		Build()

	testutil.AssertNoError(t, run(cfg, nil))
	testutil.AssertEqual(t, out.String(), engine.InitialFEN+"\n")
}

func TestRunMovesOutput(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).
		WithFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1").
		WithOutputForm(config.MovesOutput).
		WithVerbosity(0).
		Build()

	testutil.AssertNoError(t, run(cfg, nil))
	want := []string{
		"a7a8b", "a7a8n", "a7a8q", "a7a8r",
		"e1d1", "e1d2", "e1e2", "e1f1", "e1f2",
	}
	testutil.AssertEqual(t, strings.Fields(out.String()), want)
}

func TestRunRefusedMove(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithMoves("e2e4 e2e4").Build()

	err := run(cfg, nil)
	var me *errors.MoveError
	if !stderrors.As(err, &me) {
		t.Fatalf("run() error = %v; want a *MoveError", err)
	}
	testutil.AssertEqual(t, me.Ply, 2)
	testutil.AssertEqual(t, me.MoveText, "e2e4")
	testutil.AssertEqual(t, out.String(), "", "nothing printed after a refused move")
}

func TestRunBadNotation(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithMoves("e2e4 e7").Build()
	testutil.AssertErrorIs(t, run(cfg, nil), errors.ErrInvalidNotation)
}

func TestRunBadFEN(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithFEN("8/8/8 w - - 0 1").Build()
	testutil.AssertErrorIs(t, run(cfg, nil), errors.ErrInvalidFEN)
}

func TestRunMovesFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "game.txt")
	content := "1. e2e4 e7e5\n2. g1f3 b8c6\n3. f1b5\n"
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).
		WithMovesFile(name).
		WithOutputForm(config.FENOutput).
		WithVerbosity(2).
		Build()

	testutil.AssertNoError(t, run(cfg, nil))
	testutil.AssertContains(t, out.String(), "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3")
	testutil.AssertContains(t, log.String(), "Replayed 5 ply(s)")
}

func TestRunMovesFileReportsLine(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "game.txt")
	if err := os.WriteFile(name, []byte("e2e4 e7e5\ne1e3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithMovesFile(name).Build()

	err := run(cfg, nil)
	var me *errors.MoveError
	if !stderrors.As(err, &me) {
		t.Fatalf("run() error = %v; want a *MoveError", err)
	}
	testutil.AssertEqual(t, me.File, name)
	testutil.AssertEqual(t, me.Line, 2)
	testutil.AssertEqual(t, me.Ply, 3)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestLocateWrappedMoveError(t *testing.T) {
	inner := &errors.MoveError{Err: errors.ErrIllegalMove, Ply: 3, MoveText: "e1e3"}
	err := locate(fmt.Errorf("replay: %w", inner), "game.txt", 4)

	var me *errors.MoveError
	if !stderrors.As(err, &me) {
		t.Fatalf("error %T carries no *MoveError", err)
	}
	testutil.AssertEqual(t, me.File, "game.txt")
	testutil.AssertEqual(t, me.Line, 4)
	testutil.AssertEqual(t, me.Ply, 3)
}

func TestRunMissingMovesFile(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithMovesFile(filepath.Join(t.TempDir(), "missing.txt")).Build()
	if err := run(cfg, nil); err == nil {
		t.Fatal("run() succeeded with a missing moves file")
	}
}

func TestRunStdin(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).
		WithMovesFile("-").
		WithOutputForm(config.FENOutput).
		WithVerbosity(0).
		Build()

	testutil.AssertNoError(t, run(cfg, strings.NewReader("e2e4\n")))
	testutil.AssertEqual(t, out.String(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1\n")
}

func TestRunPerft(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithPerft(3, false).Build()

	testutil.AssertNoError(t, run(cfg, nil))
	testutil.AssertEqual(t, out.String(), "Nodes: 8902\n")
}

func TestRunPerftDivide(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithPerft(2, true).WithVerbosity(2).Build()

	testutil.AssertNoError(t, run(cfg, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, lines[0], "a2a3: 20")
	testutil.AssertEqual(t, lines[len(lines)-2], "Moves: 20")
	testutil.AssertEqual(t, lines[len(lines)-1], "Nodes: 400")
	testutil.AssertContains(t, log.String(), "perft(2) took")
}

func TestRunJSON(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).
		WithMoves("e2e4 f7f6 d1h5").
		WithOutputForm(config.JSONOutput).
		Build()

	testutil.AssertNoError(t, run(cfg, nil))

	var report struct {
		SideToMove  string   `json:"sideToMove"`
		Ply         int      `json:"ply"`
		CheckedKing string   `json:"checkedKing"`
		LastMove    string   `json:"lastMove"`
		LegalMoves  []string `json:"legalMoves"`
	}
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &report))
	testutil.AssertEqual(t, report.SideToMove, "black")
	testutil.AssertEqual(t, report.Ply, 3)
	testutil.AssertEqual(t, report.CheckedKing, "e8")
	testutil.AssertEqual(t, report.LastMove, "d1h5")
	testutil.AssertEqual(t, report.LegalMoves, []string{"g7g6"})
}
