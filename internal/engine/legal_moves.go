package engine

import "github.com/lgbarn/chessticle-go/internal/chess"

// ForEachMove calls yield for every legal move of the piece on from, in
// generation order, until yield returns false. An empty square yields
// nothing. Pawn moves onto the last rank are yielded once; the promotion
// piece is chosen when the move is played.
func (g *Game) ForEachMove(from chess.Square, yield func(Move) bool) {
	chess.MustValid(from)
	g.forEachMove(from, yield)
}

func (g *Game) forEachMove(from chess.Square, yield func(Move) bool) {
	start := g.board.Get(from)
	kind, colour := start.Kind(), start.Colour()
	if kind == chess.None {
		return
	}

	steps := 1
	if kind.IsSlider() {
		steps = maxDistance
	}

	for _, offset := range movementOffsets(kind) {
		to := from
		for n := 0; n < steps; n++ {
			to += chess.Square(offset)
			if to.OffBoard() {
				break
			}
			target := g.board.Get(to)
			if !target.IsEmpty() && target.Colour() == colour {
				break
			}

			captureSq := to
			nextTarget := chess.NoSquare
			if kind == chess.King && (offset == 2*east || offset == 2*west) {
				if !g.canCastle(from, offset, colour) {
					break
				}
			} else if kind.IsPawn() {
				ok, next, epCapture := g.pawnStep(from, offset, colour)
				if !ok {
					break
				}
				nextTarget = next
				if epCapture != chess.NoSquare {
					captureSq = epCapture
				}
			}

			m := Move{
				From:            from,
				To:              to,
				StartValue:      start,
				Captured:        g.board.Get(captureSq),
				CaptureSquare:   captureSq,
				EnPassantTarget: nextTarget,
			}
			if g.isLegal(m) && !yield(m) {
				return
			}

			// can't slide past a capture
			if m.IsCapture() {
				break
			}
		}
	}
}

// isLegal plays m speculatively and reports whether the mover's king is
// safe afterwards. The board is restored before returning.
func (g *Game) isLegal(m Move) bool {
	colour := m.StartValue.Colour()
	g.makeMove(m, chess.None)
	inCheck, _ := IsInCheck(&g.board, colour)
	g.unmakeMove(m)
	return !inCheck
}

// LegalMoves returns every legal move of the piece on from.
func (g *Game) LegalMoves(from chess.Square) []Move {
	var moves []Move
	g.ForEachMove(from, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// AllLegalMoves returns every legal move of the side to move, ordered by
// origin square a1..h8.
func (g *Game) AllLegalMoves() []Move {
	var moves []Move
	for sq, i := chess.Square(0), 0; i < chess.NumSquares; sq, i = sq.Next(), i+1 {
		if g.board.Get(sq).Colour() != g.toMove {
			continue
		}
		g.forEachMove(sq, func(m Move) bool {
			moves = append(moves, m)
			return true
		})
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (g *Game) HasLegalMoves() bool {
	return g.hasLegalMoves(g.toMove)
}

// hasLegalMoves scans all 64 squares for a piece of colour with a legal move.
func (g *Game) hasLegalMoves(colour chess.Colour) bool {
	for sq, i := chess.Square(0), 0; i < chess.NumSquares; sq, i = sq.Next(), i+1 {
		if g.board.Get(sq).Colour() != colour {
			continue
		}
		found := false
		g.forEachMove(sq, func(Move) bool {
			found = true
			return false
		})
		if found {
			return true
		}
	}
	return false
}

// findMove returns the legal move from -> to, if there is one.
func (g *Game) findMove(from, to chess.Square) (Move, bool) {
	var found Move
	ok := false
	g.forEachMove(from, func(m Move) bool {
		if m.To == to {
			found, ok = m, true
			return false
		}
		return true
	})
	return found, ok
}
