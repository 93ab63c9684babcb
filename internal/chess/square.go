package chess

import "fmt"

// Square is an index into the sparse 0x88 board. The low three bits hold
// the file and bits 4-6 the rank; a square is on the board iff
// index&0x88 == 0.
type Square int

// Constants for board dimensions and addressing.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	// NoSquare is the extra slot past the 0x88 range, used for
	// "no en-passant target" and "king not found".
	NoSquare Square = 128

	// BoardLen is the length of the board array including NoSquare.
	BoardLen = int(NoSquare) + 1

	offBoardMask = 0x88
)

// SquareAt converts a (rank, file) pair in [0,7] to a square.
func SquareAt(rank, file int) Square {
	return Square(rank<<4 | file)
}

// FromIndex64 converts a dense index in [0,63] (a1=0, h8=63) to a square.
func FromIndex64(i int) Square {
	return Square(i + (i &^ 7))
}

// Rank returns the rank of the square, 0 being White's back rank.
func (s Square) Rank() int {
	return int(s) >> 4
}

// File returns the file of the square, 0 being the a-file.
func (s Square) File() int {
	return int(s) & 7
}

// Coords returns the (rank, file) pair of the square.
func (s Square) Coords() (rank, file int) {
	return s.Rank(), s.File()
}

// Index64 converts the square to a dense index in [0,63].
func (s Square) Index64() int {
	return (int(s) + s.File()) >> 1
}

// OffBoard reports whether the index falls outside the 64 real squares.
// Any index reached by adding a ray offset to a real square is covered,
// including negative ones.
func (s Square) OffBoard() bool {
	return int(s)&offBoardMask != 0
}

// Valid reports whether s is one of the 64 real squares.
func (s Square) Valid() bool {
	return s >= 0 && s < NoSquare && !s.OffBoard()
}

// Next returns the following real square in a1..h8 order.
// Next of h8 is 0x80, which is off the board.
func (s Square) Next() Square {
	return (s + 9) &^ 8
}

// String returns the algebraic name of the square ("e4"), "-" for
// NoSquare and a hex dump for anything else.
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	if !s.Valid() {
		return fmt.Sprintf("0x%02x", int(s))
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return SquareAt(int(rank-'1'), int(file-'a')), true
}

// MustValid panics if s is not a real square. Queries on garbage 0x88
// indices would return garbage data instead of an error.
func MustValid(s Square) {
	if !s.Valid() {
		panic(fmt.Sprintf("chess: square index 0x%02x is off the board", int(s)))
	}
}
