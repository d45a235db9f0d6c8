// Package session manages multiple live games and runs engine searches
// through a bounded worker pool so a host is never blocked on a move
// computation. Moves are applied strictly sequentially per game: a
// human move is rejected while an engine search for that game is
// outstanding, and at most one search per game runs at a time.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/game"
	"github.com/lgbarn/gochess/internal/search"
)

// EngineMove is the outcome of an asynchronous engine-move job,
// delivered on the channel returned by RequestEngineMove.
type EngineMove struct {
	GameID uuid.UUID
	Move   chess.Move
	Err    error
}

// engineJob is one queued search request. The position is an
// independent copy taken when the job was accepted.
type engineJob struct {
	id     uuid.UUID
	pos    *chess.Position
	level  int
	budget time.Duration
	result chan<- EngineMove
}

type entry struct {
	game      *game.Game
	searching bool
}

// Manager is a registry of live games keyed by UUID.
type Manager struct {
	mu    sync.Mutex
	games map[uuid.UUID]*entry

	engine  *search.Engine
	log     *zap.Logger
	jobs    chan engineJob
	wg      sync.WaitGroup
	workers int
}

// Option configures a Manager.
type Option func(*Manager)

// WithWorkers sets the number of search workers. The default is 1.
func WithWorkers(n int) Option {
	return func(m *Manager) {
		if n >= 1 {
			m.workers = n
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates a manager and starts its search workers.
func NewManager(engine *search.Engine, opts ...Option) *Manager {
	m := &Manager{
		games:   make(map[uuid.UUID]*entry),
		engine:  engine,
		log:     zap.NewNop(),
		jobs:    make(chan engineJob, 16),
		workers: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}
	return m
}

// Close stops accepting jobs and waits for running searches to finish.
func (m *Manager) Close() {
	close(m.jobs)
	m.wg.Wait()
}

// Create registers a new game from the standard initial position and
// returns its ID.
func (m *Manager) Create(playerColor chess.Color) uuid.UUID {
	id := uuid.New()
	m.mu.Lock()
	m.games[id] = &entry{game: game.New(playerColor)}
	m.mu.Unlock()
	m.log.Info("game created", zap.String("game", id.String()), zap.String("player", playerColor.String()))
	return id
}

// CreateFromFEN registers a new game from an arbitrary position.
func (m *Manager) CreateFromFEN(fen string, playerColor chess.Color) (uuid.UUID, error) {
	g, err := game.NewFromFEN(fen, playerColor)
	if err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	m.mu.Lock()
	m.games[id] = &entry{game: g}
	m.mu.Unlock()
	return id, nil
}

// Remove drops a game from the registry.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
}

// Snapshot returns the boundary snapshot of a game.
func (m *Manager) Snapshot(id uuid.UUID) (game.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return game.Snapshot{}, errors.ErrGameNotFound
	}
	return e.game.Snapshot(), nil
}

// Move submits a human move by coordinates. It is rejected while an
// engine search for the game is outstanding.
func (m *Manager) Move(id uuid.UUID, by chess.Color, from, to chess.Square, promotion chess.PieceType) (chess.Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return chess.Move{}, errors.ErrGameNotFound
	}
	if e.searching {
		return chess.Move{}, errors.ErrSearchPending
	}
	return e.game.Request(by, from, to, promotion)
}

// Click forwards a board click to the game's selection state machine.
// Clicks are ignored while an engine search is outstanding.
func (m *Manager) Click(id uuid.UUID, by chess.Color, sq chess.Square) (game.ClickResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return game.ClickResult{}, errors.ErrGameNotFound
	}
	if e.searching {
		return game.ClickResult{Outcome: game.ClickIgnored}, nil
	}
	return e.game.Click(by, sq), nil
}

// RequestEngineMove queues an asynchronous search for the side to
// move. At most one search per game may be outstanding; the applied
// move (or the failure) is delivered on the returned channel.
func (m *Manager) RequestEngineMove(id uuid.UUID, level int, budget time.Duration) (<-chan EngineMove, error) {
	m.mu.Lock()
	e, ok := m.games[id]
	if !ok {
		m.mu.Unlock()
		return nil, errors.ErrGameNotFound
	}
	if e.searching {
		m.mu.Unlock()
		return nil, errors.ErrSearchPending
	}
	if e.game.Result().Over() {
		m.mu.Unlock()
		return nil, errors.ErrGameOver
	}
	e.searching = true
	pos := e.game.Position()
	m.mu.Unlock()

	result := make(chan EngineMove, 1)
	m.jobs <- engineJob{id: id, pos: pos, level: level, budget: budget, result: result}
	return result, nil
}

// worker drains the job queue, running each search on its own position
// copy and applying the chosen move back through the game's validated
// request path.
func (m *Manager) worker() {
	defer m.wg.Done()
	for job := range m.jobs {
		res := EngineMove{GameID: job.id}
		mv, ok := m.engine.BestMove(job.pos, job.level, job.budget)

		m.mu.Lock()
		e, found := m.games[job.id]
		if found {
			e.searching = false
		}
		switch {
		case !found:
			res.Err = errors.ErrGameNotFound
		case !ok:
			res.Err = errors.ErrGameOver
		default:
			res.Move, res.Err = e.game.Request(job.pos.ActiveColor, mv.From, mv.To, mv.Promotion)
		}
		m.mu.Unlock()

		if res.Err != nil {
			m.log.Warn("engine move failed", zap.String("game", job.id.String()), zap.Error(res.Err))
		} else {
			m.log.Info("engine move applied",
				zap.String("game", job.id.String()),
				zap.String("move", res.Move.Coord()),
			)
		}
		job.result <- res
	}
}
