package engine

import (
	"github.com/lgbarn/chessticle-go/internal/chess"
	"github.com/lgbarn/chessticle-go/internal/errors"
)

// Draw thresholds.
const (
	fiftyMoveHalfMoves = 100
	repetitionsForDraw = 3
	defaultPromotionTo = chess.Queen
)

// makeMove writes the effect of m onto the board. promo replaces a pawn
// that reaches the last rank; chess.None keeps the pawn, which is enough
// for king-safety tests.
func (g *Game) makeMove(m Move, promo chess.Kind) {
	b := &g.board
	b.Put(m.From, chess.Empty)
	// differs from m.To only for en passant
	b.Put(m.CaptureSquare, chess.Empty)

	colour := m.StartValue.Colour()
	if promo != chess.None && m.IsPromotion() {
		b.Put(m.To, chess.MakeValue(promo, colour, false))
	} else {
		b.Put(m.To, m.StartValue.Moved())
	}

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(m.From, int(m.To)-int(m.From))
		b.Put(rookFrom, chess.Empty)
		b.Put(rookTo, chess.MakeValue(chess.Rook, colour, false))
	}
}

// unmakeMove restores the board to its state before makeMove(m, ...).
func (g *Game) unmakeMove(m Move) {
	b := &g.board
	b.Put(m.To, chess.Empty)
	b.Put(m.CaptureSquare, m.Captured)
	b.Put(m.From, m.StartValue)

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(m.From, int(m.To)-int(m.From))
		b.Put(rookFrom, chess.MakeValue(chess.Rook, m.StartValue.Colour(), true))
		b.Put(rookTo, chess.Empty)
	}
}

// Move plays from -> to for the side to move. promo picks the piece a pawn
// promotes to; chess.None on a promoting move means a queen, and it is
// ignored on any other move. A refused move leaves the game untouched and
// returns a *errors.MoveError wrapping ErrEmptySquare, ErrNotYourTurn,
// ErrIllegalMove or ErrInvalidPromotion.
func (g *Game) Move(from, to chess.Square, promo chess.Kind) (Outcome, error) {
	chess.MustValid(from)
	chess.MustValid(to)

	start := g.board.Get(from)
	switch {
	case start.IsEmpty():
		return NoOutcome, g.moveError(errors.ErrEmptySquare, from, to, promo)
	case start.Colour() != g.toMove:
		return NoOutcome, g.moveError(errors.ErrNotYourTurn, from, to, promo)
	}

	m, ok := g.findMove(from, to)
	if !ok {
		return NoOutcome, g.moveError(errors.ErrIllegalMove, from, to, promo)
	}

	if m.IsPromotion() {
		if promo == chess.None {
			promo = defaultPromotionTo
		} else if !promo.IsPromotion() {
			return NoOutcome, g.moveError(errors.ErrInvalidPromotion, from, to, promo)
		}
	} else {
		promo = chess.None
	}

	g.commit(m, promo)
	return g.outcome, nil
}

// TryMove is Move reduced to a boolean: false means "ignore the gesture".
func (g *Game) TryMove(from, to chess.Square, promo chess.Kind) (Outcome, bool) {
	outcome, err := g.Move(from, to, promo)
	return outcome, err == nil
}

// moveError builds the error for a refused move at the next ply.
func (g *Game) moveError(err error, from, to chess.Square, promo chess.Kind) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      g.ply + 1,
		MoveText: FormatMove(from, to, promo),
	}
}

// commit plays a legal move and updates clocks, en passant, side to move,
// repetition counts and the outcome.
func (g *Game) commit(m Move, promo chess.Kind) {
	g.last = lastMove{move: m, halfMoves: g.halfMoves, valid: true}

	g.makeMove(m, promo)

	g.halfMoves++
	if m.IsCapture() || m.StartValue.Kind().IsPawn() {
		g.halfMoves = 0
	}
	g.epTarget = m.EnPassantTarget

	g.toMove = g.toMove.Opposite()
	g.ply++
	// the full-move number grows after Black's move
	if g.toMove == chess.White {
		g.fullMoves++
	}

	g.hash = g.keys.Hash(&g.board, g.toMove)
	count := g.repetitions.Record(g.hash)

	g.outcome = g.classify()
	g.drawClaimable = g.halfMoves >= fiftyMoveHalfMoves || count >= repetitionsForDraw
}

// RevertLastMove undoes the most recently committed move. It restores the
// board, the side to move and the half-move counter, but not the previous
// en-passant target (which is cleared) or the repetition count of the
// reverted position. It exists to take back a move that lost a race with
// the clock, not as general undo. Returns false if there is nothing to
// revert; a second call in a row is a no-op.
func (g *Game) RevertLastMove() bool {
	if !g.last.valid {
		return false
	}

	g.unmakeMove(g.last.move)
	g.halfMoves = g.last.halfMoves
	g.epTarget = chess.NoSquare
	if g.toMove == chess.White {
		g.fullMoves--
	}
	g.toMove = g.toMove.Opposite()
	g.ply--
	g.last = lastMove{}

	g.hash = g.keys.Hash(&g.board, g.toMove)
	g.outcome = NoOutcome
	g.drawClaimable = g.halfMoves >= fiftyMoveHalfMoves || g.repetitions.Count(g.hash) >= repetitionsForDraw
	return true
}
