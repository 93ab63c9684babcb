// Package hashing provides position hashing for repetition detection.
package hashing

import (
	"math/rand"
	"sync"

	"github.com/lgbarn/chessticle-go/internal/chess"
)

// DefaultSeed seeds the shared key table. Any constant would do; it only
// has to be the same for every game in the process.
const DefaultSeed int64 = 18761234

// Keys holds one random 64-bit key for every combination of square value
// (piece, colour, virgin flag) and real square, plus a side-to-move key.
// A Keys table is immutable once built.
type Keys struct {
	squares     [chess.MaxValue + 1][chess.NumSquares]uint64
	whiteToMove uint64
}

// NewKeys builds a key table from a deterministic generator.
// Tables built from the same seed are identical.
func NewKeys(seed int64) *Keys {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: keys need determinism, not secrecy
	k := &Keys{}
	for v := range k.squares {
		for sq := range k.squares[v] {
			k.squares[v][sq] = r.Uint64()
		}
	}
	k.whiteToMove = r.Uint64()
	return k
}

var (
	defaultKeys     *Keys
	defaultKeysOnce sync.Once
)

// DefaultKeys returns the shared table built from DefaultSeed.
func DefaultKeys() *Keys {
	defaultKeysOnce.Do(func() {
		defaultKeys = NewKeys(DefaultSeed)
	})
	return defaultKeys
}

// Hash combines the keys of every occupied square with XOR, and the
// white-to-move key when White is to move.
func (k *Keys) Hash(board *chess.Board, toMove chess.Colour) uint64 {
	var h uint64
	for sq, i := chess.Square(0), 0; i < chess.NumSquares; sq, i = sq.Next(), i+1 {
		v := board.Get(sq)
		if v.IsEmpty() {
			continue
		}
		h ^= k.squares[v][i]
	}
	if toMove == chess.White {
		h ^= k.whiteToMove
	}
	return h
}

// Hash hashes a position with the default key table.
func Hash(board *chess.Board, toMove chess.Colour) uint64 {
	return DefaultKeys().Hash(board, toMove)
}

// RepetitionTable counts how often each position hash has occurred.
type RepetitionTable struct {
	counts map[uint64]int
	// total number of positions recorded, repeats included
	recorded int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Record adds one occurrence of hash and returns the new count.
func (r *RepetitionTable) Record(hash uint64) int {
	r.counts[hash]++
	r.recorded++
	return r.counts[hash]
}

// Count returns how many times hash has occurred.
func (r *RepetitionTable) Count(hash uint64) int {
	return r.counts[hash]
}

// Positions returns the number of distinct positions recorded.
func (r *RepetitionTable) Positions() int {
	return len(r.counts)
}

// Recorded returns the number of positions recorded, repeats included.
func (r *RepetitionTable) Recorded() int {
	return r.recorded
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
	r.recorded = 0
}

// Copy returns an independent copy of the table.
func (r *RepetitionTable) Copy() *RepetitionTable {
	c := &RepetitionTable{counts: make(map[uint64]int, len(r.counts)), recorded: r.recorded}
	for h, n := range r.counts {
		c.counts[h] = n
	}
	return c
}
