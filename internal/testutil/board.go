package testutil

import (
	"testing"

	"github.com/lgbarn/chessticle-go/internal/chess"
)

// Sq parses an algebraic square name and fails the test if it is invalid.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return sq
}

// BoardFromRows builds a board from eight rows of FEN letters, rank 8
// first, '.' for an empty square. Kings and rooks on their starting
// squares are marked virgin.
func BoardFromRows(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("BoardFromRows: got %d rows; want %d", len(rows), chess.BoardSize)
	}

	b := chess.NewBoard()
	for i, row := range rows {
		if len(row) != chess.BoardSize {
			t.Fatalf("BoardFromRows: row %d is %q; want 8 squares", i, row)
		}
		rank := chess.BoardSize - 1 - i
		for file := 0; file < chess.BoardSize; file++ {
			c := row[file]
			if c == '.' {
				continue
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			kind := chess.KindFromLetter(c, colour)
			if kind == chess.None {
				t.Fatalf("BoardFromRows: bad letter %q in row %d", c, i)
			}
			sq := chess.SquareAt(rank, file)
			b.Set(sq, kind, colour, isStartSquare(kind, colour, sq))
		}
	}
	return b
}

// isStartSquare reports whether a king or rook stands where it starts.
func isStartSquare(kind chess.Kind, colour chess.Colour, sq chess.Square) bool {
	home := 0
	if colour == chess.Black {
		home = chess.BoardSize - 1
	}
	if sq.Rank() != home {
		return false
	}
	switch kind {
	case chess.King:
		return sq.File() == 4
	case chess.Rook:
		return sq.File() == 0 || sq.File() == 7
	}
	return false
}
