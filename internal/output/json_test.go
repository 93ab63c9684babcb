package output

import (
	"testing"

	"github.com/lgbarn/chessticle-go/internal/engine"
	"github.com/lgbarn/chessticle-go/internal/testutil"
)

func TestPositionToJSONInitial(t *testing.T) {
	p := PositionToJSON(engine.NewGame())

	testutil.AssertEqual(t, p.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, p.SideToMove, "white")
	testutil.AssertEqual(t, p.Ply, 0)
	testutil.AssertEqual(t, p.HalfMoveClock, 0)
	testutil.AssertEqual(t, p.FullMoveNumber, 1)
	testutil.AssertEqual(t, p.LastMove, "")
	testutil.AssertEqual(t, p.CheckedKing, "")
	testutil.AssertEqual(t, p.Outcome, "")
	testutil.AssertEqual(t, p.Result, "*")
	testutil.AssertEqual(t, p.Draw, JSONDraw{})
	testutil.AssertEqual(t, len(p.LegalMoves), 20)
	testutil.AssertEqual(t, len(p.Pieces), 32)
	testutil.AssertEqual(t, p.Pieces[0], JSONPiece{Square: "a1", Piece: "R", Color: "white", Virgin: true})
	testutil.AssertEqual(t, p.Pieces[31], JSONPiece{Square: "h8", Piece: "r", Color: "black", Virgin: true})
}

func TestPositionToJSONAfterMoves(t *testing.T) {
	g := gameAfter(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1g1")
	p := PositionToJSON(g)

	testutil.AssertEqual(t, p.SideToMove, "black")
	testutil.AssertEqual(t, p.LastMove, "e1g1")
	testutil.AssertEqual(t, p.HalfMoveClock, 1)
	testutil.AssertEqual(t, p.Draw.InsufficientMaterial, false)

	want := []JSONPiece{
		{Square: "a1", Piece: "R", Color: "white", Virgin: true},
		{Square: "f1", Piece: "R", Color: "white"},
		{Square: "g1", Piece: "K", Color: "white"},
		{Square: "e8", Piece: "k", Color: "black"},
	}
	testutil.AssertEqual(t, p.Pieces, want)
}

func TestPositionToJSONDraws(t *testing.T) {
	g := gameAfter(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	p := PositionToJSON(g)
	testutil.AssertTrue(t, p.Draw.InsufficientMaterial)
	testutil.AssertFalse(t, p.Draw.Claimable, "insufficient material is not a claim")
}
