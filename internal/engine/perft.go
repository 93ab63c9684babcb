package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessticle-go/internal/chess"
	"github.com/lgbarn/chessticle-go/internal/worker"
)

// promotionKinds are the pieces a pawn may become, in counting order.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each promoting move counts once per promotion piece. The game is left
// as it was.
func (g *Game) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return g.perft(depth)
}

func (g *Game) perft(depth int) uint64 {
	var nodes uint64
	for _, m := range g.AllLegalMoves() {
		if !m.IsPromotion() {
			nodes += g.perftChild(m, chess.None, depth)
			continue
		}
		for _, promo := range promotionKinds {
			nodes += g.perftChild(m, promo, depth)
		}
	}
	return nodes
}

// perftChild plays m, counts the subtree below it and takes it back.
func (g *Game) perftChild(m Move, promo chess.Kind, depth int) uint64 {
	if depth == 1 {
		return 1
	}

	epTarget := g.epTarget
	g.makeMove(m, promo)
	g.epTarget = m.EnPassantTarget
	g.toMove = g.toMove.Opposite()

	nodes := g.perft(depth - 1)

	g.toMove = g.toMove.Opposite()
	g.epTarget = epTarget
	g.unmakeMove(m)
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// rootMove is one root move and promotion choice of a divide.
type rootMove struct {
	move  Move
	promo chess.Kind
}

// PerftDivide runs Perft(depth-1) below every root move on numWorkers
// goroutines, each on its own clone of the game. Entries are sorted by
// move text; their node counts sum to Perft(depth).
func (g *Game) PerftDivide(depth, numWorkers int) ([]DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}

	var roots []rootMove
	for _, m := range g.AllLegalMoves() {
		if !m.IsPromotion() {
			roots = append(roots, rootMove{move: m})
			continue
		}
		for _, promo := range promotionKinds {
			roots = append(roots, rootMove{move: m, promo: promo})
		}
	}

	counts, err := worker.Map(roots, numWorkers, func(r rootMove) (uint64, error) {
		return g.Clone().perftChild(r.move, r.promo, depth), nil
	})
	if err != nil {
		return nil, err
	}

	byMove := make(map[string]uint64, len(roots))
	names := make([]string, 0, len(roots))
	for i, r := range roots {
		name := FormatMove(r.move.From, r.move.To, r.promo)
		byMove[name] = counts[i]
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]DivideEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, DivideEntry{Move: name, Nodes: byMove[name]})
	}
	return entries, nil
}

// DivideTotal sums the node counts of a divide.
func DivideTotal(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
