package search

import (
	"math"
	"sort"
	"time"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/eval"
)

const (
	// infinity bounds the alpha-beta window; no real score reaches it.
	infinity = 1 << 30

	// mateScore dominates every static evaluation. Remaining depth is
	// added so nearer mates score higher.
	mateScore = 1 << 20

	// abortScore is the cancellation sentinel, distinct from any real
	// score. Callers propagate it upward untouched instead of folding
	// it into alpha or beta.
	abortScore = math.MinInt32

	// maxQuiescenceCaptures caps the captures explored per quiescence
	// node to bound the extension's branching.
	maxQuiescenceCaptures = 8
)

// searcher carries the per-invocation search state. Every recursion
// node works on its own Position copy, so no state is shared between
// sibling branches.
type searcher struct {
	engine    *Engine
	rootColor chess.Color
	level     int
	start     time.Time
	budget    time.Duration
	nodes     int
}

// expired reports whether the wall-clock budget is spent. Polled at
// recursion entry; cancellation is cooperative, never preemptive.
func (s *searcher) expired() bool {
	return time.Since(s.start) >= s.budget
}

// rootSearch runs a full-width alpha-beta over every root move at the
// given depth. completed is false when the budget expired mid-depth,
// in which case the caller keeps the previous depth's result.
func (s *searcher) rootSearch(pos *chess.Position, moves []chess.Move, depth int) (best chess.Move, completed bool) {
	ordered := orderMoves(moves)
	best = ordered[0]
	alpha, beta := -infinity, infinity
	for _, m := range ordered {
		child := pos.Copy()
		engine.ApplyMove(child, m)
		v := s.alphabeta(child, depth-1, alpha, beta)
		if v == abortScore {
			return best, false
		}
		if v > alpha {
			alpha = v
			best = m
		}
	}
	return best, true
}

// alphabeta is the minimax recursion with alpha-beta pruning. Scores
// are always from the root colour's perspective: the root colour's
// nodes maximize, the opponent's minimize.
func (s *searcher) alphabeta(pos *chess.Position, depth, alpha, beta int) int {
	if s.expired() {
		return abortScore
	}
	s.nodes++

	moves := engine.LegalMoves(pos)
	if len(moves) == 0 {
		if engine.IsInCheck(pos, pos.ActiveColor) {
			// Mate favours whoever delivered it.
			if pos.ActiveColor == s.rootColor {
				return -(mateScore + depth)
			}
			return mateScore + depth
		}
		return 0 // stalemate
	}
	if depth <= 0 {
		if s.level >= quiescenceLevel {
			return s.quiesceFromRoot(pos, alpha, beta)
		}
		return eval.Evaluate(pos, s.rootColor)
	}

	ordered := orderMoves(moves)
	if pos.ActiveColor == s.rootColor {
		best := -infinity
		for _, m := range ordered {
			child := pos.Copy()
			engine.ApplyMove(child, m)
			v := s.alphabeta(child, depth-1, alpha, beta)
			if v == abortScore {
				return abortScore
			}
			if v > best {
				best = v
			}
			if v > alpha {
				alpha = v
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}
	best := infinity
	for _, m := range ordered {
		child := pos.Copy()
		engine.ApplyMove(child, m)
		v := s.alphabeta(child, depth-1, alpha, beta)
		if v == abortScore {
			return abortScore
		}
		if v < best {
			best = v
		}
		if v < beta {
			beta = v
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// quiesceFromRoot bridges the perspective-aware minimax into the
// side-to-move quiescence recursion and converts the result back to
// the root colour's perspective.
func (s *searcher) quiesceFromRoot(pos *chess.Position, alpha, beta int) int {
	if pos.ActiveColor == s.rootColor {
		return s.quiesce(pos, alpha, beta)
	}
	v := s.quiesce(pos, -beta, -alpha)
	if v == abortScore {
		return abortScore
	}
	return -v
}

// quiesce extends the search through capture sequences only, scored
// for the side to move with sign-flipped windows. The stand-pat score
// seeds alpha so a quiet position keeps its static value.
func (s *searcher) quiesce(pos *chess.Position, alpha, beta int) int {
	if s.expired() {
		return abortScore
	}
	s.nodes++

	standPat := eval.Evaluate(pos, pos.ActiveColor)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := captureMoves(engine.LegalMoves(pos))
	if len(captures) > maxQuiescenceCaptures {
		captures = captures[:maxQuiescenceCaptures]
	}

	best := standPat
	for _, m := range captures {
		child := pos.Copy()
		engine.ApplyMove(child, m)
		v := s.quiesce(child, -beta, -alpha)
		if v == abortScore {
			return abortScore
		}
		v = -v
		if v > best {
			best = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// orderMoves returns the moves sorted captures-first by the value of
// the captured piece, a cheap ordering heuristic that tightens the
// pruning window early.
func orderMoves(moves []chess.Move) []chess.Move {
	ordered := make([]chess.Move, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return captureValue(ordered[i]) > captureValue(ordered[j])
	})
	return ordered
}

// captureMoves filters to capturing moves, keeping the most valuable
// victims first.
func captureMoves(moves []chess.Move) []chess.Move {
	captures := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	sort.SliceStable(captures, func(i, j int) bool {
		return captureValue(captures[i]) > captureValue(captures[j])
	})
	return captures
}

func captureValue(m chess.Move) int {
	return eval.PieceValue(m.Captured.Type())
}
