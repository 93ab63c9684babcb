package engine

import "github.com/lgbarn/chessticle-go/internal/chess"

// castlingRookSquares returns where the rook stands before and after the
// king moves from kingFrom by offset (+-2 files).
func castlingRookSquares(kingFrom chess.Square, offset int) (rookFrom, rookTo chess.Square) {
	if offset > 0 {
		return kingFrom + 3*east, kingFrom + east
	}
	return kingFrom + 4*west, kingFrom + west
}

// canCastle reports whether the king on from may castle by offset: king
// and rook are virgin, nothing stands between them, and the king neither
// starts on, passes through, nor lands on an attacked square.
func (g *Game) canCastle(from chess.Square, offset int, colour chess.Colour) bool {
	if !g.board.Get(from).Virgin() {
		return false
	}

	rookFrom, _ := castlingRookSquares(from, offset)
	if !rookFrom.Valid() {
		return false
	}
	rook := g.board.Get(rookFrom)
	if rook.Kind() != chess.Rook || rook.Colour() != colour || !rook.Virgin() {
		return false
	}

	lo, hi := min(from, rookFrom), max(from, rookFrom)
	for sq := lo + 1; sq < hi; sq++ {
		if !g.board.Get(sq).IsEmpty() {
			return false
		}
	}

	passed := from + chess.Square(offset/2)
	to := from + chess.Square(offset)
	return !IsAttacked(&g.board, from, colour) &&
		!IsAttacked(&g.board, passed, colour) &&
		!IsAttacked(&g.board, to, colour)
}
