package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/lgbarn/chessticle-go/internal/chess"
	"github.com/lgbarn/chessticle-go/internal/config"
	"github.com/lgbarn/chessticle-go/internal/engine"
)

const (
	checkColour    = "#d03030"
	lastMoveColour = "#c8b040"
)

// BoardRenderer draws diagrams styled for one output writer.
type BoardRenderer struct {
	out *termenv.Output
}

// NewBoardRenderer picks a colour profile for w. ColourAuto lets termenv
// inspect the writer and the environment.
func NewBoardRenderer(w io.Writer, mode config.ColourMode) *BoardRenderer {
	var out *termenv.Output
	switch mode {
	case config.ColourAlways:
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256))
	case config.ColourNever:
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	default:
		out = termenv.NewOutput(w)
	}
	return &BoardRenderer{out: out}
}

// Render draws the position rank 8 first with file letters underneath.
// The king in check and both squares of the last move are highlighted.
func (r *BoardRenderer) Render(g *engine.Game) string {
	checked := g.CheckedKingSquare()
	last, hasLast := g.LastMove()
	board := g.Board()

	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(rank, file)
			letter := string(board.Get(sq).Letter())

			switch {
			case sq == checked:
				sb.WriteString(r.out.String(letter).Background(r.out.Color(checkColour)).Bold().String())
			case hasLast && (sq == last.From || sq == last.To):
				sb.WriteString(r.out.String(letter).Background(r.out.Color(lastMoveColour)).String())
			default:
				sb.WriteString(letter)
			}
			if file < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
