package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessticle-go/internal/config"
	"github.com/lgbarn/chessticle-go/internal/engine"
	"github.com/lgbarn/chessticle-go/internal/testutil"
)

func TestNewPositionWriterForms(t *testing.T) {
	tests := []struct {
		form config.OutputForm
		want string
	}{
		{config.BoardOutput, "*output.BoardWriter"},
		{config.FENOutput, "*output.FENWriter"},
		{config.MovesOutput, "*output.MovesWriter"},
		{config.JSONOutput, "*output.JSONWriter"},
	}

	for _, tt := range tests {
		t.Run(tt.form.String(), func(t *testing.T) {
			cfg := config.NewConfigBuilder().WithOutputForm(tt.form).Build()
			got := NewPositionWriter(cfg)
			testutil.AssertEqual(t, fmt.Sprintf("%T", got), tt.want)
		})
	}
}

func TestFENWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputForm(config.FENOutput).WithOutputFile(&buf).Build()

	testutil.AssertNoError(t, NewPositionWriter(cfg).WritePosition(engine.NewGame()))
	testutil.AssertEqual(t, buf.String(), engine.InitialFEN+"\nWhite to move\n")
}

func TestMovesWriterWraps(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutputForm(config.MovesOutput).
		WithOutputFile(&buf).
		WithLineLength(20).
		WithVerbosity(0).
		Build()

	testutil.AssertNoError(t, NewPositionWriter(cfg).WritePosition(engine.NewGame()))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, lines[0], "a2a3 a2a4 b1a3 b1c3")
	testutil.AssertEqual(t, len(lines), 5)
	for _, line := range lines {
		testutil.AssertTrue(t, len(line) <= 20, "line %q too long", line)
	}
}

func TestBoardWriterStatus(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputFile(&buf).WithColour(config.ColourNever).Build()

	g := gameAfter(t, engine.InitialFEN, "e2e4", "f7f6", "d1h5")
	testutil.AssertNoError(t, NewPositionWriter(cfg).WritePosition(g))
	testutil.AssertTrue(t, strings.HasSuffix(buf.String(), "  a b c d e f g h\nBlack to move, check\n"), buf.String())
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputForm(config.JSONOutput).WithOutputFile(&buf).Build()

	g := gameAfter(t, engine.InitialFEN, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertNoError(t, NewPositionWriter(cfg).WritePosition(g))

	var got JSONPosition
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &got))
	testutil.AssertEqual(t, got.FEN, g.FEN())
	testutil.AssertEqual(t, got.Outcome, "White checkmated")
	testutil.AssertEqual(t, got.Result, "0-1")
	testutil.AssertEqual(t, got.CheckedKing, "e1")
	testutil.AssertEqual(t, got.LastMove, "d8h4")
	testutil.AssertEqual(t, got.LegalMoves, []string{})
}
