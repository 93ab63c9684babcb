package engine

import "github.com/lgbarn/chessticle-go/internal/chess"

// Pawn home ranks, from which a double push is allowed.
const (
	whitePawnRank = 1
	blackPawnRank = 6
)

// pawnStep validates one pawn offset from from. It returns whether the
// step is legal in shape, the en-passant target the step creates and the
// square of a pawn it captures en passant (chess.NoSquare for either when
// not applicable).
func (g *Game) pawnStep(from chess.Square, offset int, colour chess.Colour) (ok bool, nextTarget, epCapture chess.Square) {
	nextTarget, epCapture = chess.NoSquare, chess.NoSquare
	to := from + chess.Square(offset)
	target := g.board.Get(to)

	switch {
	case offset == 2*north || offset == 2*south:
		skipped := from + chess.Square(offset/2)
		if !onPawnHomeRank(from, colour) || !target.IsEmpty() || !g.board.Get(skipped).IsEmpty() {
			return false, nextTarget, epCapture
		}
		return true, skipped, epCapture

	case isDiagonal(offset):
		if !target.IsEmpty() {
			return target.Colour() != colour, nextTarget, epCapture
		}
		if to != g.epTarget {
			return false, nextTarget, epCapture
		}
		// The pawn that double-pushed sits one rank behind the target,
		// next to the capturing pawn.
		behind := to - chess.Square(colour.PawnDirection())
		if g.board.Get(behind).Kind() != chess.PawnOf(colour.Opposite()) {
			return false, nextTarget, epCapture
		}
		return true, nextTarget, behind
	}

	return target.IsEmpty(), nextTarget, epCapture
}

// onPawnHomeRank reports whether from is on the colour's pawn start rank.
func onPawnHomeRank(from chess.Square, colour chess.Colour) bool {
	if colour == chess.White {
		return from.Rank() == whitePawnRank
	}
	return from.Rank() == blackPawnRank
}
