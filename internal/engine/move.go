package engine

import "github.com/lgbarn/chessticle-go/internal/chess"

// Move describes one transition of the board. Moves are produced by the
// generator, tested and discarded; a Game keeps only the last one it
// committed.
type Move struct {
	From chess.Square
	To   chess.Square

	// Value on From before the move, virgin flag included.
	StartValue chess.Value

	// Value removed by the move (chess.Empty if none) and the square it
	// was removed from. CaptureSquare equals To except for en passant.
	Captured      chess.Value
	CaptureSquare chess.Square

	// En-passant target that becomes active after this move.
	EnPassantTarget chess.Square
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsEnPassant reports whether the move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.IsCapture() && m.CaptureSquare != m.To
}

// IsCastling reports whether the move is a king's two-file castling step.
func (m Move) IsCastling() bool {
	d := int(m.To) - int(m.From)
	return m.StartValue.Kind() == chess.King && (d == 2*east || d == 2*west)
}

// IsPromotion reports whether a pawn reaches the last rank.
func (m Move) IsPromotion() bool {
	return m.StartValue.Kind().IsPawn() && isPromotionRank(m.To)
}

// String returns the move in coordinate notation ("e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// isPromotionRank reports whether sq lies on rank 1 or rank 8.
func isPromotionRank(sq chess.Square) bool {
	r := sq.Rank()
	return r == 0 || r == chess.BoardSize-1
}
