package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessticle-go/internal/chess"
	"github.com/lgbarn/chessticle-go/internal/engine"
)

// JSONPosition represents a position report in JSON format.
type JSONPosition struct {
	FEN            string      `json:"fen"`
	SideToMove     string      `json:"sideToMove"`
	Ply            int         `json:"ply"`
	HalfMoveClock  int         `json:"halfMoveClock"`
	FullMoveNumber int         `json:"fullMoveNumber"`
	LastMove       string      `json:"lastMove,omitempty"`
	CheckedKing    string      `json:"checkedKing,omitempty"`
	Outcome        string      `json:"outcome,omitempty"`
	Result         string      `json:"result"`
	Draw           JSONDraw    `json:"draw"`
	LegalMoves     []string    `json:"legalMoves"`
	Pieces         []JSONPiece `json:"pieces"`
}

// JSONDraw reports the draw conditions of a position.
type JSONDraw struct {
	Claimable            bool `json:"claimable"`
	FiftyMoveRule        bool `json:"fiftyMoveRule,omitempty"`
	ThreefoldRepetition  bool `json:"threefoldRepetition,omitempty"`
	InsufficientMaterial bool `json:"insufficientMaterial,omitempty"`
	RepetitionCount      int  `json:"repetitionCount"`
}

// JSONPiece is one occupied square. Piece is the FEN letter; Virgin is
// set for pieces that have never moved.
type JSONPiece struct {
	Square string `json:"square"`
	Piece  string `json:"piece"`
	Color  string `json:"color"`
	Virgin bool   `json:"virgin,omitempty"`
}

// PositionToJSON converts the current position of g to JSON form.
func PositionToJSON(g *engine.Game) *JSONPosition {
	ds := g.DrawStatus()
	p := &JSONPosition{
		FEN:            g.FEN(),
		SideToMove:     colorName(g.SideToMove()),
		Ply:            g.Ply(),
		HalfMoveClock:  g.HalfMoveClock(),
		FullMoveNumber: g.FullMoveNumber(),
		Result:         g.Outcome().Result(),
		Draw: JSONDraw{
			Claimable:            ds.Claimable(),
			FiftyMoveRule:        ds.FiftyMoveRule,
			ThreefoldRepetition:  ds.ThreefoldRepetition,
			InsufficientMaterial: ds.InsufficientMaterial,
			RepetitionCount:      g.RepetitionCount(),
		},
		LegalMoves: LegalMoveNames(g),
		Pieces:     collectPieces(g),
	}
	if p.LegalMoves == nil {
		p.LegalMoves = []string{}
	}

	if m, ok := g.LastMove(); ok {
		p.LastMove = m.String()
	}
	if sq := g.CheckedKingSquare(); sq != chess.NoSquare {
		p.CheckedKing = sq.String()
	}
	if o := g.Outcome(); o.IsTerminal() {
		p.Outcome = o.String()
	}
	return p
}

// collectPieces lists occupied squares from a1 to h8.
func collectPieces(g *engine.Game) []JSONPiece {
	var pieces []JSONPiece
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(rank, file)
			v := g.Board().Get(sq)
			if v.IsEmpty() {
				continue
			}
			pieces = append(pieces, JSONPiece{
				Square: sq.String(),
				Piece:  string(v.Letter()),
				Color:  colorName(v.Colour()),
				Virgin: v.Virgin(),
			})
		}
	}
	return pieces
}

func colorName(c chess.Colour) string {
	switch c {
	case chess.White:
		return "white"
	case chess.Black:
		return "black"
	}
	return ""
}

// WritePositionJSON encodes the report of g to w with two-space indent.
func WritePositionJSON(w io.Writer, g *engine.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(PositionToJSON(g))
}
