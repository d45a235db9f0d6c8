// Package search implements the adversarial move search: alpha-beta
// minimax with capture-first ordering and a quiescence extension,
// wrapped in a progressive-deepening driver under a wall-clock budget.
// A search never blocks its host indefinitely and always yields a
// legal move when one exists.
package search

import (
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/eval"
)

// Difficulty levels and their nominal search depths in plies.
const (
	MinLevel = 1
	MaxLevel = 5
)

var levelDepths = [MaxLevel]int{1, 2, 3, 3, 4}

// jitterCoefficients shrink as the level rises: more randomness at low
// levels, near-deterministic play at the top.
var jitterCoefficients = [MaxLevel]float64{1.0, 0.6, 0.35, 0.2, 0.05}

// quiescenceLevel is the first level whose leaf nodes are extended with
// a capture-only quiescence search.
const quiescenceLevel = 4

// Engine is a reusable search engine. The random source drives the
// jitter band and is injectable so search behaviour is reproducible
// under test.
type Engine struct {
	mu  sync.Mutex
	rnd *rand.Rand
	log *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandSource sets the random source used for move jitter.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) {
		e.rnd = rand.New(src)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates a search engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// intn draws a uniform value in [0, n). Draws are serialized so one
// Engine can serve concurrent game sessions.
func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.Intn(n)
}

// ClampLevel pins a difficulty level into the supported range.
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// BestMove searches the position for the side to move and returns the
// chosen move. ok is false only when no legal move exists. The search
// works on an independent copy of pos and checks the wall-clock budget
// cooperatively; on expiry it degrades to the best move found so far,
// falling back to the first legal move if not even depth 1 completed.
func (e *Engine) BestMove(pos *chess.Position, level int, budget time.Duration) (move chess.Move, ok bool) {
	level = ClampLevel(level)
	root := pos.Copy()
	moves := engine.LegalMoves(root)
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	s := &searcher{
		engine:    e,
		rootColor: root.ActiveColor,
		level:     level,
		start:     time.Now(),
		budget:    budget,
	}

	if level == MinLevel {
		return s.casualMove(root, moves), true
	}

	best := moves[0]
	reached := 0
	for depth := 1; depth <= levelDepths[level-1]; depth++ {
		mv, completed := s.rootSearch(root, moves, depth)
		if !completed {
			break
		}
		best = mv
		reached = depth
		if s.expired() {
			break
		}
		// Suspension point: yield to the host between deepening
		// iterations so its event loop stays responsive.
		runtime.Gosched()
	}

	best = s.applyJitter(root, moves, best)
	e.log.Debug("search finished",
		zap.Int("level", level),
		zap.Int("depth", reached),
		zap.Int("nodes", s.nodes),
		zap.String("move", best.Coord()),
		zap.Duration("elapsed", time.Since(s.start)),
	)
	return best, true
}

// casualMove implements level 1: score every move one ply deep, keep
// the top two fifths, and pick one at random. Cheap and intentionally
// weak.
func (s *searcher) casualMove(pos *chess.Position, moves []chess.Move) chess.Move {
	type scoredMove struct {
		move  chess.Move
		score int
	}
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{m, s.staticScore(pos, m)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	keep := len(scored) * 2 / 5
	if keep < 1 {
		keep = 1
	}
	return scored[s.engine.intn(keep)].move
}

// applyJitter re-scores the root moves with a one-ply static
// evaluation and picks uniformly among those within a band of the
// searched best. The band is two pawns scaled by the level's jitter
// coefficient, producing human-like variety without search cost.
func (s *searcher) applyJitter(pos *chess.Position, moves []chess.Move, best chess.Move) chess.Move {
	band := int(float64(eval.PawnValue) * jitterCoefficients[s.level-1] * 2)
	if band <= 0 || len(moves) < 2 {
		return best
	}
	anchor := s.staticScore(pos, best)
	candidates := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		diff := s.staticScore(pos, m) - anchor
		if diff < 0 {
			diff = -diff
		}
		if diff <= band {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return best
	}
	return candidates[s.engine.intn(len(candidates))]
}

// staticScore evaluates the position one ply after the move, from the
// root colour's perspective.
func (s *searcher) staticScore(pos *chess.Position, m chess.Move) int {
	child := pos.Copy()
	engine.ApplyMove(child, m)
	return eval.Evaluate(child, s.rootColor)
}
