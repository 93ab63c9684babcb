// Package chess provides the board representation shared by the engine:
// 0x88 square indices, packed square values and the board store.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
// The values double as the colour bits of a square Value.
type Colour uint8

const (
	NoColour Colour = 0
	White    Colour = 1 << 4
	Black    Colour = 1 << 5
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// PawnDirection returns the square delta of a single pawn push.
func (c Colour) PawnDirection() int {
	if c == White {
		return 16
	}
	return -16
}

// Kind represents a piece kind. Pawn colour is part of the kind
// because pawns move asymmetrically.
type Kind uint8

const (
	None Kind = iota
	WhitePawn
	BlackPawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "WhitePawn", "BlackPawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the upper-case letter of a kind, as used in FEN.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPawn reports whether k is a pawn of either colour.
func (k Kind) IsPawn() bool {
	return k == WhitePawn || k == BlackPawn
}

// IsSlider reports whether k moves along rays of up to seven squares.
func (k Kind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// IsPromotion reports whether a pawn may promote to k.
func (k Kind) IsPromotion() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// PawnOf returns the pawn kind of the given colour.
func PawnOf(c Colour) Kind {
	if c == White {
		return WhitePawn
	}
	return BlackPawn
}

// KindFromLetter converts a piece letter (either case) to a kind.
// 'p' and 'P' need the colour to pick the pawn kind.
func KindFromLetter(c byte, colour Colour) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return PawnOf(colour)
	}
	return None
}

// Value is the packed content of one square: piece kind in bits 0-2,
// colour in bits 4-5 and the virgin flag in bit 6.
type Value uint8

const (
	kindMask Value = 0x07

	// Empty is the value of an unoccupied square.
	Empty Value = 0

	// VirginFlag marks a king or rook that has never moved.
	VirginFlag Value = 1 << 6

	// Sentinel is stored in the extra board slot at NoSquare.
	Sentinel Value = 0xff

	// MaxValue is the largest value a real square can hold.
	MaxValue = Value(King) | Value(Black) | VirginFlag
)

// MakeValue packs a kind, colour and virgin flag into a square value.
func MakeValue(kind Kind, colour Colour, virgin bool) Value {
	if kind == None {
		return Empty
	}
	v := Value(kind) | Value(colour)
	if virgin {
		v |= VirginFlag
	}
	return v
}

// Kind extracts the piece kind.
func (v Value) Kind() Kind {
	return Kind(v & kindMask)
}

// Colour extracts the piece colour; NoColour for an empty square.
func (v Value) Colour() Colour {
	if v == Empty {
		return NoColour
	}
	if Colour(v)&White == White {
		return White
	}
	return Black
}

// Virgin reports whether the virgin flag is set.
func (v Value) Virgin() bool {
	return v&VirginFlag == VirginFlag
}

// Moved returns v without its virgin flag.
func (v Value) Moved() Value {
	return v &^ VirginFlag
}

// IsEmpty reports whether v is an empty square.
func (v Value) IsEmpty() bool {
	return v == Empty
}

// Letter returns the FEN letter of the piece: upper case for White,
// lower case for Black and '.' for an empty square.
func (v Value) Letter() byte {
	if v == Empty {
		return '.'
	}
	l := v.Kind().Letter()
	if v.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short description such as "White Rook*" (star = virgin).
func (v Value) String() string {
	if v == Empty {
		return "Empty"
	}
	s := fmt.Sprintf("%s %s", v.Colour(), v.Kind())
	if v.Virgin() {
		s += "*"
	}
	return s
}
