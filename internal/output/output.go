// Package output formats chess positions for the terminal and for tools.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessticle-go/internal/chess"
	"github.com/lgbarn/chessticle-go/internal/engine"
)

// DefaultLineLength is used when a writer is given no line length.
const DefaultLineLength = 80

var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// OutputWriter handles space-separated output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// StatusLine summarises side to move, check, outcome and draw claims,
// as in "Black to move, check".
func StatusLine(g *engine.Game) string {
	parts := []string{g.SideToMove().String() + " to move"}
	if g.InCheck() && !g.IsCheckmate() {
		parts = append(parts, "check")
	}
	if o := g.Outcome(); o.IsTerminal() {
		parts = append(parts, fmt.Sprintf("%s %s", strings.ToLower(o.String()), o.Result()))
	}

	ds := g.DrawStatus()
	if ds.FiftyMoveRule {
		parts = append(parts, "draw claimable by the fifty-move rule")
	}
	if ds.ThreefoldRepetition {
		parts = append(parts, "draw claimable by threefold repetition")
	}
	if ds.InsufficientMaterial {
		parts = append(parts, "insufficient material")
	}
	return strings.Join(parts, ", ")
}

// LegalMoveNames lists the legal moves of the side to move in coordinate
// notation, one entry per promotion piece, sorted.
func LegalMoveNames(g *engine.Game) []string {
	var names []string
	for _, m := range g.AllLegalMoves() {
		if !m.IsPromotion() {
			names = append(names, m.String())
			continue
		}
		for _, kind := range promotionKinds {
			names = append(names, engine.FormatMove(m.From, m.To, kind))
		}
	}
	slices.Sort(names)
	return names
}
