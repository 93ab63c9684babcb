package engine

import (
	stderrors "errors"
	"strings"

	"github.com/lgbarn/chessticle-go/internal/chess"
	"github.com/lgbarn/chessticle-go/internal/errors"
)

// ParseMove parses a move in coordinate notation: origin and destination
// squares followed by an optional promotion letter, as in "e2e4", "e7e8q"
// or "e7e8=Q". Errors wrap errors.ErrInvalidNotation.
func ParseMove(text string) (from, to chess.Square, promo chess.Kind, err error) {
	s := strings.TrimSpace(text)
	if len(s) < 4 {
		return chess.NoSquare, chess.NoSquare, chess.None, notationError(text, 0, "two squares", s)
	}

	var ok bool
	if from, ok = chess.ParseSquare(strings.ToLower(s[0:2])); !ok {
		return chess.NoSquare, chess.NoSquare, chess.None, notationError(text, 1, "origin square", s[0:2])
	}
	if to, ok = chess.ParseSquare(strings.ToLower(s[2:4])); !ok {
		return chess.NoSquare, chess.NoSquare, chess.None, notationError(text, 3, "destination square", s[2:4])
	}

	rest := strings.TrimPrefix(s[4:], "=")
	switch len(rest) {
	case 0:
		return from, to, chess.None, nil
	case 1:
		// the colour only matters for pawns, which are not a promotion kind
		promo = chess.KindFromLetter(rest[0], chess.White)
		if !promo.IsPromotion() {
			return chess.NoSquare, chess.NoSquare, chess.None, notationError(text, len(s), "promotion letter q, r, b or n", rest)
		}
		return from, to, promo, nil
	}
	return chess.NoSquare, chess.NoSquare, chess.None, notationError(text, 5, "end of move", rest)
}

func notationError(input string, column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidNotation,
		Input:    input,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}

// FormatMove renders a move in coordinate notation. A promotion kind is
// appended as a lower-case letter; chess.None appends nothing.
func FormatMove(from, to chess.Square, promo chess.Kind) string {
	s := from.String() + to.String()
	if promo.IsPromotion() {
		s += string(promo.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMoveList parses whitespace-separated coordinate moves. Move numbers
// such as "1." are skipped so that "1. e2e4 e7e5" is accepted.
func ParseMoveList(text string) ([]string, error) {
	var moves []string
	for _, field := range strings.Fields(text) {
		if isMoveNumber(field) {
			continue
		}
		if _, _, _, err := ParseMove(field); err != nil {
			return nil, err
		}
		moves = append(moves, field)
	}
	return moves, nil
}

// isMoveNumber reports whether field looks like "12." or "12...".
func isMoveNumber(field string) bool {
	digits := strings.TrimRight(field, ".")
	if digits == field || digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// Play parses and plays one move in coordinate notation.
func (g *Game) Play(text string) (Outcome, error) {
	from, to, promo, err := ParseMove(text)
	if err != nil {
		return NoOutcome, err
	}
	return g.Move(from, to, promo)
}

// PlayMoves plays a sequence of moves in coordinate notation, stopping at
// the first refused move. The returned error is a *errors.MoveError
// carrying the ply of the refused move.
func (g *Game) PlayMoves(moves []string) (Outcome, error) {
	outcome := g.outcome
	for _, text := range moves {
		var err error
		outcome, err = g.Play(text)
		if err != nil {
			return outcome, asMoveError(err, g.ply+1, text)
		}
	}
	return outcome, nil
}

// asMoveError returns err unchanged if it already carries a *errors.MoveError
// anywhere in its chain, and otherwise wraps it with the ply and move text.
func asMoveError(err error, ply int, text string) error {
	var me *errors.MoveError
	if stderrors.As(err, &me) {
		return err
	}
	return &errors.MoveError{Err: err, Ply: ply, MoveText: text}
}
