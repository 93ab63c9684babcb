package engine

import "github.com/lgbarn/chessticle-go/internal/chess"

// maxDistance is the longest ray on an 8x8 board.
const maxDistance = 7

// 0x88 deltas for one step in each direction.
const (
	north     = 16
	south     = -16
	east      = 1
	west      = -1
	northEast = north + east
	northWest = north + west
	southEast = south + east
	southWest = south + west
)

var (
	rookOffsets   = []int{east, west, north, south}
	bishopOffsets = []int{northEast, northWest, southEast, southWest}
	queenOffsets  = []int{east, west, north, south, northEast, northWest, southEast, southWest}
	knightOffsets = []int{
		north + 2*east, north + 2*west, south + 2*east, south + 2*west,
		2*north + east, 2*north + west, 2*south + east, 2*south + west,
	}

	// The king's +-2 file offsets are castling candidates.
	kingOffsets = []int{east, west, 2 * east, 2 * west, north, south, northEast, northWest, southEast, southWest}

	// Single push, double push and the two captures.
	whitePawnOffsets = []int{north, 2 * north, northEast, northWest}
	blackPawnOffsets = []int{south, 2 * south, southEast, southWest}
)

// movementOffsets returns the step deltas of a piece kind.
func movementOffsets(kind chess.Kind) []int {
	switch kind {
	case chess.WhitePawn:
		return whitePawnOffsets
	case chess.BlackPawn:
		return blackPawnOffsets
	case chess.Knight:
		return knightOffsets
	case chess.Bishop:
		return bishopOffsets
	case chess.Rook:
		return rookOffsets
	case chess.Queen:
		return queenOffsets
	case chess.King:
		return kingOffsets
	}
	return nil
}

// isDiagonal reports whether a one-step delta is a diagonal.
func isDiagonal(offset int) bool {
	return offset == northEast || offset == northWest || offset == southEast || offset == southWest
}
