// Package game owns the session-level game state: the canonical
// position, move history, repetition counts, and terminal result. All
// mutation goes through validated move requests; collaborators consume
// read-only snapshots.
package game

import (
	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
)

// moveRef is the from/to pair recorded for the last applied move.
type moveRef struct {
	From chess.Square
	To   chess.Square
}

// Game is one chess game session. It is created from the standard
// initial position (or a FEN), mutated exactly once per applied legal
// move, and becomes immutable once the result is terminal.
//
// Game is not safe for concurrent use; the session manager serializes
// access.
type Game struct {
	pos         *chess.Position
	playerColor chess.Color
	history     []string
	repetitions map[string]int
	repOrder    []string // repetition keys in first-occurrence order
	result      engine.Result
	lastMove    *moveRef

	// Click-selection state machine. selectedFrom is NoSquare in the
	// Idle state.
	selectedFrom  chess.Square
	selectedMoves []chess.Move
}

// New creates a game from the standard initial position. playerColor
// is the human side recorded in snapshots.
func New(playerColor chess.Color) *Game {
	g, err := NewFromFEN(engine.InitialFEN, playerColor)
	if err != nil {
		panic("game: initial position failed to load: " + err.Error())
	}
	return g
}

// NewFromFEN creates a game from an arbitrary position.
func NewFromFEN(fen string, playerColor chess.Color) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		pos:          pos,
		playerColor:  playerColor,
		repetitions:  make(map[string]int),
		selectedFrom: chess.NoSquare,
	}
	g.recordRepetition()
	g.result = engine.ComputeResult(g.pos, g.repetitions)
	return g, nil
}

// Position returns an independently owned copy of the current
// position. Callers, including the search, never observe later
// mutations of the game.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// PlayerColor returns the human side.
func (g *Game) PlayerColor() chess.Color {
	return g.playerColor
}

// ActiveColor returns the side to move.
func (g *Game) ActiveColor() chess.Color {
	return g.pos.ActiveColor
}

// Result returns the current terminal status.
func (g *Game) Result() engine.Result {
	return g.result
}

// History returns the notated moves played so far.
func (g *Game) History() []string {
	out := make([]string, len(g.history))
	copy(out, g.history)
	return out
}

// LastMove returns the from/to of the most recent move.
func (g *Game) LastMove() (from, to chess.Square, ok bool) {
	if g.lastMove == nil {
		return chess.NoSquare, chess.NoSquare, false
	}
	return g.lastMove.From, g.lastMove.To, true
}

// LegalMoves returns the legal moves for the side to move, or nil once
// the game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.result.Over() {
		return nil
	}
	return engine.LegalMoves(g.pos)
}

// Request submits a move by coordinates on behalf of a side. The legal
// move set is re-derived and the request is accepted only on an exact
// match: same origin and destination, and the same promotion piece
// (NoPieceType for non-promotions). On rejection the game state is
// unchanged.
func (g *Game) Request(by chess.Color, from, to chess.Square, promotion chess.PieceType) (chess.Move, error) {
	if g.result.Over() {
		return chess.Move{}, errors.ErrGameOver
	}
	if by != g.pos.ActiveColor {
		return chess.Move{}, errors.ErrOutOfTurn
	}
	for _, m := range engine.LegalMoves(g.pos) {
		if m.From == from && m.To == to && m.Promotion == promotion {
			g.apply(m)
			return m, nil
		}
	}
	return chess.Move{}, &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		From:   from.String(),
		To:     to.String(),
		Reason: "not in the legal move set",
	}
}

// apply commits a validated legal move: notation and last move are
// recorded, the position transitions, the repetition key is counted,
// and the terminal result is recomputed.
func (g *Game) apply(m chess.Move) {
	notation := engine.Notation(g.pos, m)
	engine.ApplyMove(g.pos, m)
	g.history = append(g.history, notation)
	g.lastMove = &moveRef{From: m.From, To: m.To}
	g.recordRepetition()
	g.result = engine.ComputeResult(g.pos, g.repetitions)
	g.clearSelection()
}

// recordRepetition counts the current position, remembering key order
// for snapshot round-trips.
func (g *Game) recordRepetition() {
	key := g.pos.RepetitionKey()
	if g.repetitions[key] == 0 {
		g.repOrder = append(g.repOrder, key)
	}
	g.repetitions[key]++
}
