package chess

import "testing"

func TestSquareRoundTrip(t *testing.T) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sq := SquareAt(rank, file)
			if !sq.Valid() {
				t.Fatalf("SquareAt(%d, %d) = 0x%02x is not valid", rank, file, int(sq))
			}
			gotRank, gotFile := sq.Coords()
			if gotRank != rank || gotFile != file {
				t.Errorf("SquareAt(%d, %d).Coords() = (%d, %d)", rank, file, gotRank, gotFile)
			}
			i := rank*BoardSize + file
			if got := sq.Index64(); got != i {
				t.Errorf("SquareAt(%d, %d).Index64() = %d; want %d", rank, file, got, i)
			}
			if got := FromIndex64(i); got != sq {
				t.Errorf("FromIndex64(%d) = 0x%02x; want 0x%02x", i, int(got), int(sq))
			}
		}
	}
}

func TestSquareOffBoard(t *testing.T) {
	onBoard := 0
	for i := -128; i < 256; i++ {
		if !Square(i).OffBoard() {
			onBoard++
			if i < 0 || i > 0x77 {
				t.Errorf("Square(%d).OffBoard() = false", i)
			}
		}
	}
	if onBoard != NumSquares {
		t.Errorf("%d on-board indices; want %d", onBoard, NumSquares)
	}
	if NoSquare.Valid() {
		t.Error("NoSquare.Valid() = true")
	}
}

func TestSquareNext(t *testing.T) {
	sq := Square(0)
	for i := 0; i < NumSquares; i++ {
		if sq != FromIndex64(i) {
			t.Fatalf("step %d: got 0x%02x; want 0x%02x", i, int(sq), int(FromIndex64(i)))
		}
		sq = sq.Next()
	}
	if !sq.OffBoard() {
		t.Errorf("Next() past h8 = 0x%02x; want off-board", int(sq))
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name   string
		want   Square
		wantOK bool
	}{
		{"a1", 0x00, true},
		{"h1", 0x07, true},
		{"e4", 0x34, true},
		{"a8", 0x70, true},
		{"h8", 0x77, true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"e", NoSquare, false},
		{"e44", NoSquare, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSquare(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseSquare(%q) = (0x%02x, %v); want (0x%02x, %v)", tt.name, int(got), ok, int(tt.want), tt.wantOK)
			}
			if ok && got.String() != tt.name {
				t.Errorf("String() = %q; want %q", got.String(), tt.name)
			}
		})
	}
}

func TestValuePacking(t *testing.T) {
	tests := []struct {
		kind   Kind
		colour Colour
		virgin bool
		letter byte
	}{
		{WhitePawn, White, false, 'P'},
		{BlackPawn, Black, false, 'p'},
		{Knight, White, false, 'N'},
		{Bishop, Black, false, 'b'},
		{Rook, White, true, 'R'},
		{Queen, Black, false, 'q'},
		{King, Black, true, 'k'},
	}
	for _, tt := range tests {
		v := MakeValue(tt.kind, tt.colour, tt.virgin)
		if v.Kind() != tt.kind || v.Colour() != tt.colour || v.Virgin() != tt.virgin {
			t.Errorf("MakeValue(%v, %v, %v) unpacked to (%v, %v, %v)",
				tt.kind, tt.colour, tt.virgin, v.Kind(), v.Colour(), v.Virgin())
		}
		if v.Letter() != tt.letter {
			t.Errorf("%v.Letter() = %c; want %c", v, v.Letter(), tt.letter)
		}
		if v > MaxValue {
			t.Errorf("%v = %d exceeds MaxValue %d", v, v, MaxValue)
		}
		if v.Moved().Virgin() {
			t.Errorf("%v.Moved() still virgin", v)
		}
	}
	if Empty.Colour() != NoColour {
		t.Errorf("Empty.Colour() = %v; want NoColour", Empty.Colour())
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap White and Black")
	}
	if NoColour.Opposite() != NoColour {
		t.Error("NoColour.Opposite() != NoColour")
	}
}
