package engine

import (
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
)

// mustParse parses a FEN fixture, failing the test on error.
func mustParse(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return pos
}

// mustSquare parses an algebraic coordinate, failing the test on error.
func mustSquare(t *testing.T, coord string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(coord)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", coord, err)
	}
	return sq
}

// findMove locates the legal move matching the coordinate string
// ("e2e4", "a7a8Q"), failing the test when it is not legal.
func findMove(t *testing.T, pos *chess.Position, coord string) chess.Move {
	t.Helper()
	if len(coord) != 4 && len(coord) != 5 {
		t.Fatalf("malformed coordinate move %q", coord)
	}
	from := mustSquare(t, coord[:2])
	to := mustSquare(t, coord[2:4])
	promotion := chess.NoPieceType
	if len(coord) == 5 {
		var err error
		promotion, err = chess.ParsePieceType(coord[4])
		if err != nil {
			t.Fatalf("malformed promotion in %q: %v", coord, err)
		}
	}
	for _, m := range LegalMoves(pos) {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m
		}
	}
	t.Fatalf("no legal move %s in %s", coord, FormatFEN(pos))
	return chess.Move{}
}

// advance applies a sequence of coordinate moves to the position.
func advance(t *testing.T, pos *chess.Position, coords ...string) {
	t.Helper()
	for _, coord := range coords {
		ApplyMove(pos, findMove(t, pos, coord))
	}
}

// hasMove reports whether the move list contains the coordinate move.
func hasMove(moves []chess.Move, coord string) bool {
	for _, m := range moves {
		if m.Coord() == coord {
			return true
		}
	}
	return false
}
