package chess

import "fmt"

// Board is the canonical square array, indexed by 0x88 square.
// The slot at NoSquare holds Sentinel.
type Board struct {
	squares [BoardLen]Value
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := &Board{}
	b.SetupInitialPosition()
	return b
}

// Clear empties all 64 real squares.
func (b *Board) Clear() {
	b.squares[NoSquare] = Sentinel
	for sq, i := Square(0), 0; i < NumSquares; sq, i = sq.Next(), i+1 {
		b.squares[sq] = Empty
	}
}

// SetupInitialPosition sets up the standard chess starting position.
// Kings and rooks are marked virgin.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	b.setRankPieces(0, "RNBQKBNR")
	b.setRankPieces(1, "PPPPPPPP")
	b.setRankPieces(6, "pppppppp")
	b.setRankPieces(7, "rnbqkbnr")
}

// setRankPieces fills one rank from eight FEN letters, '.' for empty.
func (b *Board) setRankPieces(rank int, pieces string) {
	if len(pieces) != BoardSize || rank < 0 || rank >= BoardSize {
		panic(fmt.Sprintf("chess: bad rank setup %d %q", rank, pieces))
	}
	for file := 0; file < BoardSize; file++ {
		c := pieces[file]
		if c == '.' {
			continue
		}
		colour := White
		if c >= 'a' && c <= 'z' {
			colour = Black
		}
		kind := KindFromLetter(c, colour)
		b.squares[SquareAt(rank, file)] = MakeValue(kind, colour, kind == King || kind == Rook)
	}
}

// Get returns the value on a square. The sentinel slot may be read;
// any other off-board index panics.
func (b *Board) Get(sq Square) Value {
	if sq != NoSquare {
		MustValid(sq)
	}
	return b.squares[sq]
}

// Piece returns the kind and colour on a square.
func (b *Board) Piece(sq Square) (Kind, Colour) {
	v := b.Get(sq)
	return v.Kind(), v.Colour()
}

// IsVirgin reports whether the piece on sq has never moved.
func (b *Board) IsVirgin(sq Square) bool {
	return b.Get(sq).Virgin()
}

// Set places a piece on a square. Kind None empties the square.
func (b *Board) Set(sq Square, kind Kind, colour Colour, virgin bool) {
	b.Put(sq, MakeValue(kind, colour, virgin))
}

// Put stores a raw value on a square.
func (b *Board) Put(sq Square, v Value) {
	MustValid(sq)
	b.squares[sq] = v
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Equal reports whether two boards hold identical values on every square.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares
}

// String renders the board rank 8 first, one FEN letter per square.
func (b *Board) String() string {
	out := make([]byte, 0, (BoardSize+1)*BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			out = append(out, b.squares[SquareAt(rank, file)].Letter())
		}
		out = append(out, '\n')
	}
	return string(out)
}
