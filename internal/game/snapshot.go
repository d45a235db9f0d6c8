package game

import (
	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
)

// Snapshot is the read-only boundary structure consumed by
// presentation and persistence collaborators. It is fully
// round-trippable: Restore reproduces an equivalent game, including
// repetition counts.
type Snapshot struct {
	// Squares maps every algebraic square "a1".."h8" to a two-character
	// piece code, or the empty string for an empty square.
	Squares map[string]string `json:"squares"`

	ActiveColor    string            `json:"activeColor"`
	PlayerColor    string            `json:"playerColor"`
	Castling       CastlingSnapshot  `json:"castling"`
	EnPassant      string            `json:"enPassant"` // "" when unset
	HalfmoveClock  int               `json:"halfmoveClock"`
	FullmoveNumber int               `json:"fullmoveNumber"`
	History        []string          `json:"history"`
	LastMove       *LastMoveSnapshot `json:"lastMove,omitempty"`
	Result         *ResultSnapshot   `json:"result,omitempty"`

	// Repetitions lists (key, count) pairs in first-occurrence order so
	// the repetition map reconstructs deterministically.
	Repetitions []RepetitionCount `json:"repetitions"`
}

// CastlingSnapshot mirrors the four castling rights.
type CastlingSnapshot struct {
	WhiteKingSide  bool `json:"whiteKingSide"`
	WhiteQueenSide bool `json:"whiteQueenSide"`
	BlackKingSide  bool `json:"blackKingSide"`
	BlackQueenSide bool `json:"blackQueenSide"`
}

// LastMoveSnapshot records the from/to of the most recent move.
type LastMoveSnapshot struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ResultSnapshot is the terminal result at the boundary. It is omitted
// entirely while the game is ongoing.
type ResultSnapshot struct {
	Outcome string `json:"outcome"`
	Winner  string `json:"winner,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// RepetitionCount is one (repetition key, occurrence count) pair.
type RepetitionCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Snapshot captures the full game state at the boundary.
func (g *Game) Snapshot() Snapshot {
	squares := make(map[string]string, 64)
	for sq := chess.Square(0); sq < 64; sq++ {
		squares[sq.String()] = g.pos.At(sq).Code()
	}

	snap := Snapshot{
		Squares:     squares,
		ActiveColor: string([]byte{g.pos.ActiveColor.Code()}),
		PlayerColor: string([]byte{g.playerColor.Code()}),
		Castling: CastlingSnapshot{
			WhiteKingSide:  g.pos.Castling.WhiteKingSide,
			WhiteQueenSide: g.pos.Castling.WhiteQueenSide,
			BlackKingSide:  g.pos.Castling.BlackKingSide,
			BlackQueenSide: g.pos.Castling.BlackQueenSide,
		},
		HalfmoveClock:  g.pos.HalfmoveClock,
		FullmoveNumber: g.pos.FullmoveNumber,
		History:        g.History(),
	}
	if g.pos.EnPassant != chess.NoSquare {
		snap.EnPassant = g.pos.EnPassant.String()
	}
	if g.lastMove != nil {
		snap.LastMove = &LastMoveSnapshot{
			From: g.lastMove.From.String(),
			To:   g.lastMove.To.String(),
		}
	}
	if g.result.Over() {
		rs := &ResultSnapshot{Outcome: g.result.Outcome.String(), Reason: g.result.Reason}
		if g.result.Outcome == engine.Checkmate {
			rs.Winner = string([]byte{g.result.Winner.Code()})
		}
		snap.Result = rs
	}
	snap.Repetitions = make([]RepetitionCount, 0, len(g.repOrder))
	for _, key := range g.repOrder {
		snap.Repetitions = append(snap.Repetitions, RepetitionCount{Key: key, Count: g.repetitions[key]})
	}
	return snap
}

// Restore reconstructs a game from a snapshot. The terminal result is
// recomputed from the restored position and repetition counts rather
// than trusted from the snapshot.
func Restore(snap Snapshot) (*Game, error) {
	pos := &chess.Position{
		EnPassant:      chess.NoSquare,
		HalfmoveClock:  snap.HalfmoveClock,
		FullmoveNumber: snap.FullmoveNumber,
	}

	for coord, code := range snap.Squares {
		sq, err := chess.ParseSquare(coord)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "square %q", coord)
		}
		piece, err := chess.ParsePiece(code)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "piece %q on %s", code, coord)
		}
		pos.Set(sq, piece)
	}

	active, err := parseColorField(snap.ActiveColor)
	if err != nil {
		return nil, err
	}
	pos.ActiveColor = active
	player, err := parseColorField(snap.PlayerColor)
	if err != nil {
		return nil, err
	}

	pos.Castling = chess.CastlingRights{
		WhiteKingSide:  snap.Castling.WhiteKingSide,
		WhiteQueenSide: snap.Castling.WhiteQueenSide,
		BlackKingSide:  snap.Castling.BlackKingSide,
		BlackQueenSide: snap.Castling.BlackQueenSide,
	}
	if snap.EnPassant != "" {
		sq, err := chess.ParseSquare(snap.EnPassant)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "en passant %q", snap.EnPassant)
		}
		pos.EnPassant = sq
	}

	g := &Game{
		pos:          pos,
		playerColor:  player,
		history:      append([]string(nil), snap.History...),
		repetitions:  make(map[string]int, len(snap.Repetitions)),
		selectedFrom: chess.NoSquare,
	}
	for _, entry := range snap.Repetitions {
		g.repetitions[entry.Key] = entry.Count
		g.repOrder = append(g.repOrder, entry.Key)
	}
	if snap.LastMove != nil {
		from, err := chess.ParseSquare(snap.LastMove.From)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidSnapshot, "last move origin")
		}
		to, err := chess.ParseSquare(snap.LastMove.To)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidSnapshot, "last move destination")
		}
		g.lastMove = &moveRef{From: from, To: to}
	}

	g.result = engine.ComputeResult(g.pos, g.repetitions)
	return g, nil
}

func parseColorField(code string) (chess.Color, error) {
	if len(code) != 1 {
		return chess.White, errors.Wrapf(errors.ErrInvalidSnapshot, "colour %q", code)
	}
	c, err := chess.ParseColor(code[0])
	if err != nil {
		return chess.White, errors.Wrapf(errors.ErrInvalidSnapshot, "colour %q", code)
	}
	return c, nil
}
