package engine

import "github.com/lgbarn/chessticle-go/internal/chess"

// DrawStatus summarises the draw conditions of the current position.
type DrawStatus struct {
	// FiftyMoveRule is true once 100 half-moves have passed without a
	// pawn move or capture.
	FiftyMoveRule bool

	// ThreefoldRepetition is true if the current position has occurred
	// three or more times.
	ThreefoldRepetition bool

	// InsufficientMaterial is true if neither side can possibly mate.
	// It does not make a draw claimable; it is informational.
	InsufficientMaterial bool
}

// Claimable reports whether a draw can be claimed.
func (s DrawStatus) Claimable() bool {
	return s.FiftyMoveRule || s.ThreefoldRepetition
}

// DrawStatus reports the draw conditions of the current position.
func (g *Game) DrawStatus() DrawStatus {
	return DrawStatus{
		FiftyMoveRule:        g.halfMoves >= fiftyMoveHalfMoves,
		ThreefoldRepetition:  g.RepetitionCount() >= repetitionsForDraw,
		InsufficientMaterial: HasInsufficientMaterial(&g.board),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq, i := chess.Square(0), 0; i < chess.NumSquares; sq, i = sq.Next(), i+1 {
		kind, colour := board.Piece(sq)
		switch kind {
		case chess.None, chess.King:
			continue
		case chess.WhitePawn, chess.BlackPawn, chess.Rook, chess.Queen:
			return false
		}

		if colour == chess.White {
			whitePieces = append(whitePieces, kind)
			if kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, kind)
			if kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.Rank()+sq.File())%2 == 1
}
