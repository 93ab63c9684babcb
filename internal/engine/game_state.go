package engine

import "github.com/lgbarn/chessticle-go/internal/chess"

// Outcome is the terminal result, if any, of the position after a move.
type Outcome int

const (
	NoOutcome Outcome = iota
	WhiteCheckmated
	BlackCheckmated
	Stalemate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteCheckmated:
		return "White checkmated"
	case BlackCheckmated:
		return "Black checkmated"
	case Stalemate:
		return "Stalemate"
	}
	return "None"
}

// IsTerminal reports whether the game is over.
func (o Outcome) IsTerminal() bool {
	return o != NoOutcome
}

// Result returns the PGN-style result string ("1-0", "0-1", "1/2-1/2", "*").
func (o Outcome) Result() string {
	switch o {
	case WhiteCheckmated:
		return "0-1"
	case BlackCheckmated:
		return "1-0"
	case Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// classify decides checkmate or stalemate for the side to move.
func (g *Game) classify() Outcome {
	if g.hasLegalMoves(g.toMove) {
		return NoOutcome
	}
	if inCheck, _ := IsInCheck(&g.board, g.toMove); !inCheck {
		return Stalemate
	}
	if g.toMove == chess.White {
		return WhiteCheckmated
	}
	return BlackCheckmated
}

// IsCheckmate returns true if the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return g.outcome == WhiteCheckmated || g.outcome == BlackCheckmated
}

// IsStalemate returns true if the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return g.outcome == Stalemate
}

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool {
	inCheck, _ := IsInCheck(&g.board, g.toMove)
	return inCheck
}
