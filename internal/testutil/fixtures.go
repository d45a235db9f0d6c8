package testutil

import (
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

// MustPosition parses a FEN fixture, failing the test on error.
func MustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return pos
}

// MustSquare parses an algebraic coordinate, failing the test on error.
func MustSquare(t *testing.T, coord string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(coord)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", coord, err)
	}
	return sq
}

// FindMove locates the legal move with the given origin and
// destination coordinates, failing the test when it is not legal.
// promotion may be chess.NoPieceType.
func FindMove(t *testing.T, pos *chess.Position, from, to string, promotion chess.PieceType) chess.Move {
	t.Helper()
	f, to2 := MustSquare(t, from), MustSquare(t, to)
	for _, m := range engine.LegalMoves(pos) {
		if m.From == f && m.To == to2 && m.Promotion == promotion {
			return m
		}
	}
	t.Fatalf("no legal move %s%s in %s", from, to, engine.FormatFEN(pos))
	return chess.Move{}
}

// Advance applies a sequence of coordinate moves ("e2e4", "e7e8q") to
// the position, failing the test when any of them is not legal.
func Advance(t *testing.T, pos *chess.Position, coords ...string) {
	t.Helper()
	for _, coord := range coords {
		if len(coord) != 4 && len(coord) != 5 {
			t.Fatalf("malformed coordinate move %q", coord)
		}
		promotion := chess.NoPieceType
		if len(coord) == 5 {
			var err error
			promotion, err = chess.ParsePieceType(coord[4] - ('a' - 'A'))
			if err != nil {
				t.Fatalf("malformed promotion in %q: %v", coord, err)
			}
		}
		m := FindMove(t, pos, coord[:2], coord[2:4], promotion)
		engine.ApplyMove(pos, m)
	}
}
