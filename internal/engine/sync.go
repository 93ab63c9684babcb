package engine

import (
	"sync"

	"github.com/lgbarn/chessticle-go/internal/chess"
)

// SyncGame wraps Game with mutex protection, for a UI goroutine and a
// clock goroutine sharing one game. Legality queries play moves
// speculatively, so they take the write lock like moves do.
type SyncGame struct {
	game *Game
	mu   sync.RWMutex
}

// NewSyncGame wraps g. The caller must not use g directly afterwards.
func NewSyncGame(g *Game) *SyncGame {
	return &SyncGame{game: g}
}

// Move plays a move; see Game.Move.
func (s *SyncGame) Move(from, to chess.Square, promo chess.Kind) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Move(from, to, promo)
}

// TryMove plays a move; see Game.TryMove.
func (s *SyncGame) TryMove(from, to chess.Square, promo chess.Kind) (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.TryMove(from, to, promo)
}

// RevertLastMove undoes the last move; see Game.RevertLastMove.
func (s *SyncGame) RevertLastMove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.RevertLastMove()
}

// IsLegalPromotionAttempt reports whether from -> to is a legal promotion.
func (s *SyncGame) IsLegalPromotionAttempt(from, to chess.Square) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.IsLegalPromotionAttempt(from, to)
}

// LegalMoves returns the legal moves of the piece on from.
func (s *SyncGame) LegalMoves(from chess.Square) []Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMoves(from)
}

// PieceAt returns the kind and colour on a square.
func (s *SyncGame) PieceAt(sq chess.Square) (chess.Kind, chess.Colour) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.PieceAt(sq)
}

// IsHomeSquarePiece reports whether the piece on sq has never moved.
func (s *SyncGame) IsHomeSquarePiece(sq chess.Square) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.IsHomeSquarePiece(sq)
}

// SideToMove returns the colour to move.
func (s *SyncGame) SideToMove() chess.Colour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.SideToMove()
}

// CheckedKingSquare returns the square of a king in check or chess.NoSquare.
func (s *SyncGame) CheckedKingSquare() chess.Square {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.CheckedKingSquare()
}

// IsDrawClaimable reports whether a draw can be claimed.
func (s *SyncGame) IsDrawClaimable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.IsDrawClaimable()
}

// Outcome returns the result of the last committed move.
func (s *SyncGame) Outcome() Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Outcome()
}

// FEN returns the current position as a FEN string.
func (s *SyncGame) FEN() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.FEN()
}

// Snapshot returns an independent copy of the wrapped game.
func (s *SyncGame) Snapshot() *Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Clone()
}
