package engine

import "github.com/lgbarn/gochess/internal/chess"

// Perft counts the leaf nodes of the legal-move tree to the given
// depth. It is the standard movegen correctness check: the counts from
// the initial position are 20, 400, 8902, and 197281 for depths 1-4.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := pos.Copy()
		ApplyMove(child, m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}
