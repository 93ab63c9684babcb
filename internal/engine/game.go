// Package engine implements the chess rules: move generation, legality
// filtering, move execution and the game state around them.
package engine

import (
	"github.com/lgbarn/chessticle-go/internal/chess"
	"github.com/lgbarn/chessticle-go/internal/hashing"
)

// Game holds the board and all state of one game. It is not safe for
// concurrent use; see SyncGame.
type Game struct {
	board chess.Board

	// Who has the next move.
	toMove chess.Colour

	// Square skipped by the last double pawn push, or chess.NoSquare.
	epTarget chess.Square

	// Half-moves since the last pawn move or capture.
	halfMoves int

	// Full-move number, starting at 1 and incremented after Black moves.
	fullMoves int

	// Half-moves played in this game.
	ply int

	keys        *hashing.Keys
	repetitions *hashing.RepetitionTable
	hash        uint64

	last          lastMove
	outcome       Outcome
	drawClaimable bool
}

// lastMove remembers what RevertLastMove needs.
type lastMove struct {
	move      Move
	halfMoves int
	valid     bool
}

// Option configures a Game.
type Option func(*Game)

// WithKeys sets the hashing key table. The default is hashing.DefaultKeys().
func WithKeys(keys *hashing.Keys) Option {
	return func(g *Game) {
		if keys != nil {
			g.keys = keys
		}
	}
}

// NewGame creates a game in the standard starting position, White to move.
func NewGame(opts ...Option) *Game {
	g := newGame(opts)
	g.board.SetupInitialPosition()
	g.start()
	return g
}

func newGame(opts []Option) *Game {
	g := &Game{
		toMove:      chess.White,
		epTarget:    chess.NoSquare,
		fullMoves:   1,
		keys:        hashing.DefaultKeys(),
		repetitions: hashing.NewRepetitionTable(),
	}
	g.board.Clear()
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// start hashes and classifies the starting position once it is on the board.
// Only committed moves are counted for repetition.
func (g *Game) start() {
	g.hash = g.keys.Hash(&g.board, g.toMove)
	g.outcome = g.classify()
	g.drawClaimable = g.halfMoves >= fiftyMoveHalfMoves
}

// Clone returns an independent copy of the game. The key table is shared.
func (g *Game) Clone() *Game {
	c := *g
	c.repetitions = g.repetitions.Copy()
	return &c
}

// PieceAt returns the kind and colour on a square.
func (g *Game) PieceAt(sq chess.Square) (chess.Kind, chess.Colour) {
	chess.MustValid(sq)
	return g.board.Piece(sq)
}

// IsHomeSquarePiece reports whether the piece on sq has never moved.
// Only kings and rooks are tracked.
func (g *Game) IsHomeSquarePiece(sq chess.Square) bool {
	chess.MustValid(sq)
	return g.board.IsVirgin(sq)
}

// SideToMove returns the colour to move.
func (g *Game) SideToMove() chess.Colour {
	return g.toMove
}

// CheckedKingSquare returns the square of a king in check, White's first,
// or chess.NoSquare if neither king is in check.
func (g *Game) CheckedKingSquare() chess.Square {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if inCheck, sq := IsInCheck(&g.board, colour); inCheck {
			return sq
		}
	}
	return chess.NoSquare
}

// IsLegalPromotionAttempt reports whether from -> to is a legal pawn move
// onto the last rank, so the caller knows to ask for a promotion piece.
func (g *Game) IsLegalPromotionAttempt(from, to chess.Square) bool {
	chess.MustValid(from)
	chess.MustValid(to)
	if !g.board.Get(from).Kind().IsPawn() || !isPromotionRank(to) {
		return false
	}
	if g.board.Get(from).Colour() != g.toMove {
		return false
	}
	_, ok := g.findMove(from, to)
	return ok
}

// IsDrawClaimable reports whether the fifty-move rule or threefold
// repetition allows the side to move to claim a draw.
func (g *Game) IsDrawClaimable() bool {
	return g.drawClaimable
}

// Outcome returns the result of the last committed move.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// HalfMoveClock returns the half-moves since the last pawn move or capture.
func (g *Game) HalfMoveClock() int {
	return g.halfMoves
}

// FullMoveNumber returns the current full-move number.
func (g *Game) FullMoveNumber() int {
	return g.fullMoves
}

// Ply returns the number of half-moves committed in this game.
func (g *Game) Ply() int {
	return g.ply
}

// EnPassantTarget returns the current en-passant target or chess.NoSquare.
func (g *Game) EnPassantTarget() chess.Square {
	return g.epTarget
}

// Hash returns the hash of the current position.
func (g *Game) Hash() uint64 {
	return g.hash
}

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.repetitions.Count(g.hash)
}

// LastMove returns the last committed move, if it can still be reverted.
func (g *Game) LastMove() (Move, bool) {
	return g.last.move, g.last.valid
}

// Board returns a copy of the board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}
