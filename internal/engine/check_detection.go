package engine

import "github.com/lgbarn/chessticle-go/internal/chess"

// IsAttacked reports whether a piece of the given colour standing on sq
// could be captured by the opponent on the next move. The square itself
// need not be occupied.
func IsAttacked(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	// A king-shaped scan misses knights, so they get their own pass.
	for _, offset := range knightOffsets {
		from := sq + chess.Square(offset)
		if from.OffBoard() {
			continue
		}
		v := board.Get(from)
		if v.Kind() == chess.Knight && v.Colour() != colour {
			return true
		}
	}

	for _, offset := range queenOffsets {
		from := sq
		for n := 0; n < maxDistance; n++ {
			from += chess.Square(offset)
			if from.OffBoard() {
				break
			}
			v := board.Get(from)
			if v.IsEmpty() {
				continue
			}
			if v.Colour() == colour {
				break
			}
			if attacksAlongRay(v.Kind(), offset, n == 0) {
				return true
			}
			// first blocker ends the ray
			break
		}
	}

	return false
}

// attacksAlongRay reports whether an enemy piece of the given kind, found
// first along a ray from the target, attacks the target. offset points from
// the target towards the piece.
func attacksAlongRay(kind chess.Kind, offset int, adjacent bool) bool {
	diagonal := isDiagonal(offset)
	switch kind {
	case chess.Queen:
		return true
	case chess.Rook:
		return !diagonal
	case chess.Bishop:
		return diagonal
	case chess.King:
		return adjacent
	case chess.WhitePawn:
		// White pawns capture upwards, so they sit below their target.
		return adjacent && diagonal && offset < 0
	case chess.BlackPawn:
		return adjacent && diagonal && offset > 0
	}
	return false
}

// FindKing returns the square of the given colour's king, or
// chess.NoSquare if there is none.
func FindKing(board *chess.Board, colour chess.Colour) chess.Square {
	king := chess.MakeValue(chess.King, colour, false)
	for sq, i := chess.Square(0), 0; i < chess.NumSquares; sq, i = sq.Next(), i+1 {
		if board.Get(sq).Moved() == king {
			return sq
		}
	}
	return chess.NoSquare
}

// IsInCheck returns true if the given colour's king is in check, along with
// the king's square.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, chess.Square) {
	kingSq := FindKing(board, colour)
	if kingSq == chess.NoSquare {
		return false, kingSq
	}
	return IsAttacked(board, kingSq, colour), kingSq
}
