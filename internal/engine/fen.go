package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessticle-go/internal/chess"
	"github.com/lgbarn/chessticle-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingRight ties a FEN castling letter to the squares whose pieces
// must be virgin for it.
type castlingRight struct {
	letter byte
	colour chess.Colour
	king   chess.Square
	rook   chess.Square
}

var castlingRights = []castlingRight{
	{'K', chess.White, chess.SquareAt(0, 4), chess.SquareAt(0, 7)},
	{'Q', chess.White, chess.SquareAt(0, 4), chess.SquareAt(0, 0)},
	{'k', chess.Black, chess.SquareAt(7, 4), chess.SquareAt(7, 7)},
	{'q', chess.Black, chess.SquareAt(7, 4), chess.SquareAt(7, 0)},
}

// NewGameFromFEN creates a game from a FEN string. Missing trailing fields
// take their usual defaults (White to move, no castling, no en passant,
// clocks 0 and 1). The position must be playable: one king per side, no
// pawns on the first or last rank, and the side not to move not in check.
// Errors wrap errors.ErrInvalidFEN.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fenError(fen, 0, "piece placement", "empty string")
	}

	g := newGame(opts)

	if err := parsePiecePositions(g, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(g, fen, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, fen, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, fen, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(g, fen, parts); err != nil {
		return nil, err
	}
	if err := validatePosition(g, fen); err != nil {
		return nil, err
	}

	g.start()
	return g, nil
}

// fenError builds a ParseError wrapping ErrInvalidFEN.
func fenError(fen string, column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}

// fieldColumn returns the 1-based column of the i-th FEN field.
func fieldColumn(fen string, parts []string, i int) int {
	pos := 0
	for j := 0; j <= i; j++ {
		idx := strings.Index(fen[pos:], parts[j])
		if idx < 0 {
			return 0
		}
		if j == i {
			return pos + idx + 1
		}
		pos += idx + len(parts[j])
	}
	return 0
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(g *Game, fen, positions string) error {
	column := strings.Index(fen, positions) + 1
	rank, file := chess.BoardSize-1, 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fenError(fen, column+i, "8 squares per rank", fmt.Sprintf("%d", file))
			}
			rank--
			file = 0
			if rank < 0 {
				return fenError(fen, column+i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fenError(fen, column+i, "8 squares per rank", "more")
			}
		default:
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			kind := chess.KindFromLetter(c, colour)
			if kind == chess.None {
				return fenError(fen, column+i, "piece letter", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize {
				return fenError(fen, column+i, "8 squares per rank", "more")
			}
			g.board.Set(chess.SquareAt(rank, file), kind, colour, false)
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return fenError(fen, column+len(positions), "8 ranks of 8 squares", "fewer")
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Game, fen string, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fenError(fen, fieldColumn(fen, parts, 1), "w or b", parts[1])
	}
	return nil
}

// parseCastlingRights marks the king and rook of every listed right as
// virgin. A right whose king or rook is missing is an error.
func parseCastlingRights(g *Game, fen string, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	column := fieldColumn(fen, parts, 2)
	for i := 0; i < len(parts[2]); i++ {
		c := parts[2][i]
		var right *castlingRight
		for j := range castlingRights {
			if castlingRights[j].letter == c {
				right = &castlingRights[j]
			}
		}
		if right == nil {
			return fenError(fen, column+i, "castling letter KQkq", fmt.Sprintf("%q", c))
		}

		king := g.board.Get(right.king)
		rook := g.board.Get(right.rook)
		if king.Kind() != chess.King || king.Colour() != right.colour ||
			rook.Kind() != chess.Rook || rook.Colour() != right.colour {
			return fenError(fen, column+i, "king and rook on their home squares", string(c))
		}
		g.board.Put(right.king, king|chess.VirginFlag)
		g.board.Put(right.rook, rook|chess.VirginFlag)
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// must be empty, sit behind a pawn of the side that just moved, and have
// an empty square behind it on the pawn's start rank.
func parseEnPassant(g *Game, fen string, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	column := fieldColumn(fen, parts, 3)
	target, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fenError(fen, column, "square or -", parts[3])
	}

	mover := g.toMove.Opposite()
	dir := chess.Square(mover.PawnDirection())
	expectedRank := 2
	if mover == chess.Black {
		expectedRank = 5
	}
	if target.Rank() != expectedRank ||
		!g.board.Get(target).IsEmpty() ||
		!g.board.Get(target-dir).IsEmpty() ||
		g.board.Get(target+dir).Kind() != chess.PawnOf(mover) {
		return fenError(fen, column, "square skipped by a double pawn push", parts[3])
	}

	g.epTarget = target
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(g *Game, fen string, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fenError(fen, fieldColumn(fen, parts, 4), "half-move clock", parts[4])
		}
		g.halfMoves = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fenError(fen, fieldColumn(fen, parts, 5), "full-move number", parts[5])
		}
		g.fullMoves = n
	}
	if len(parts) > 6 {
		return fenError(fen, fieldColumn(fen, parts, 6), "end of FEN", parts[6])
	}
	return nil
}

// validatePosition rejects positions the move generator cannot handle.
func validatePosition(g *Game, fen string) error {
	var kings [2]int
	for sq, i := chess.Square(0), 0; i < chess.NumSquares; sq, i = sq.Next(), i+1 {
		kind, colour := g.board.Piece(sq)
		switch {
		case kind == chess.King && colour == chess.White:
			kings[0]++
		case kind == chess.King:
			kings[1]++
		case kind.IsPawn() && isPromotionRank(sq):
			return fenError(fen, 0, "no pawns on the first or last rank", "pawn on "+sq.String())
		}
	}
	if kings[0] != 1 || kings[1] != 1 {
		return fenError(fen, 0, "one king per side", fmt.Sprintf("%d white, %d black", kings[0], kings[1]))
	}

	if inCheck, _ := IsInCheck(&g.board, g.toMove.Opposite()); inCheck {
		return fenError(fen, 0, "side not to move out of check", g.toMove.Opposite().String()+" in check")
	}
	return nil
}

// FEN returns the current position as a FEN string. Castling rights are
// derived from the virgin flags of kings and rooks.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, &g.board)
	sb.WriteByte(' ')
	sb.WriteString(g.epTarget.String())
	fmt.Fprintf(&sb, " %d %d", g.halfMoves, g.fullMoves)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			v := board.Get(chess.SquareAt(rank, file))
			if v.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(v.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range castlingRights {
		king := board.Get(right.king)
		rook := board.Get(right.rook)
		if king == chess.MakeValue(chess.King, right.colour, true) &&
			rook == chess.MakeValue(chess.Rook, right.colour, true) {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
