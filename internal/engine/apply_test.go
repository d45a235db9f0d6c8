package engine

import (
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
)

func TestApplyMoveClocks(t *testing.T) {
	pos := NewInitialPosition()

	// A knight move increments the halfmove clock.
	advance(t, pos, "g1f3")
	if pos.HalfmoveClock != 1 {
		t.Errorf("halfmove clock = %d after a knight move, want 1", pos.HalfmoveClock)
	}
	if pos.FullmoveNumber != 1 {
		t.Errorf("fullmove number = %d after White's move, want 1", pos.FullmoveNumber)
	}

	// Black's reply bumps the fullmove number.
	advance(t, pos, "b8c6")
	if pos.FullmoveNumber != 2 {
		t.Errorf("fullmove number = %d after Black's move, want 2", pos.FullmoveNumber)
	}
	if pos.HalfmoveClock != 2 {
		t.Errorf("halfmove clock = %d, want 2", pos.HalfmoveClock)
	}

	// A pawn move resets the clock.
	advance(t, pos, "e2e4")
	if pos.HalfmoveClock != 0 {
		t.Errorf("halfmove clock = %d after a pawn move, want 0", pos.HalfmoveClock)
	}

	// So does a capture.
	advance(t, pos, "c6d4", "f3d4")
	if pos.HalfmoveClock != 0 {
		t.Errorf("halfmove clock = %d after a capture, want 0", pos.HalfmoveClock)
	}
}

func TestApplyMoveFlipsSideToMove(t *testing.T) {
	pos := NewInitialPosition()
	advance(t, pos, "e2e4")
	if pos.ActiveColor != chess.Black {
		t.Error("side to move must flip to Black")
	}
	advance(t, pos, "e7e5")
	if pos.ActiveColor != chess.White {
		t.Error("side to move must flip back to White")
	}
}

func TestApplyCastleRelocatesRook(t *testing.T) {
	t.Run("white king side", func(t *testing.T) {
		pos := mustParse(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
		advance(t, pos, "e1g1")
		if pos.At(mustSquare(t, "g1")).Code() != "wK" {
			t.Error("king must land on g1")
		}
		if pos.At(mustSquare(t, "f1")).Code() != "wR" {
			t.Error("rook must relocate to f1")
		}
		if pos.At(mustSquare(t, "h1")) != chess.NoPiece {
			t.Error("h1 must be vacated")
		}
		if pos.Castling.WhiteKingSide || pos.Castling.WhiteQueenSide {
			t.Error("castling revokes both of the mover's rights")
		}
	})

	t.Run("black queen side", func(t *testing.T) {
		pos := mustParse(t, "r3k3/8/8/8/8/8/8/4K3 b q - 0 1")
		advance(t, pos, "e8c8")
		if pos.At(mustSquare(t, "c8")).Code() != "bK" {
			t.Error("king must land on c8")
		}
		if pos.At(mustSquare(t, "d8")).Code() != "bR" {
			t.Error("rook must relocate to d8")
		}
		if pos.At(mustSquare(t, "a8")) != chess.NoPiece {
			t.Error("a8 must be vacated")
		}
	})
}

func TestApplyPromotionReplacesPawn(t *testing.T) {
	pos := mustParse(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	advance(t, pos, "a7a8Q")
	if pos.At(mustSquare(t, "a8")).Code() != "wQ" {
		t.Errorf("a8 holds %q, want wQ", pos.At(mustSquare(t, "a8")).Code())
	}
	if pos.At(mustSquare(t, "a7")) != chess.NoPiece {
		t.Error("a7 must be vacated")
	}
}

func TestApplyUnderpromotion(t *testing.T) {
	pos := mustParse(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	advance(t, pos, "a7a8N")
	if pos.At(mustSquare(t, "a8")).Code() != "wN" {
		t.Errorf("a8 holds %q, want wN", pos.At(mustSquare(t, "a8")).Code())
	}
}

func TestCastlingRightsRevocation(t *testing.T) {
	t.Run("king move revokes both", func(t *testing.T) {
		pos := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		advance(t, pos, "e1e2")
		if pos.Castling.WhiteKingSide || pos.Castling.WhiteQueenSide {
			t.Error("white rights must be gone after the king moves")
		}
		if !pos.Castling.BlackKingSide || !pos.Castling.BlackQueenSide {
			t.Error("black rights must be untouched")
		}
	})

	t.Run("rook move revokes its side", func(t *testing.T) {
		pos := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		advance(t, pos, "a1a4")
		if pos.Castling.WhiteQueenSide {
			t.Error("queen-side right must be gone after the a-rook moves")
		}
		if !pos.Castling.WhiteKingSide {
			t.Error("king-side right must survive")
		}
	})

	t.Run("rook capture revokes the victim's side", func(t *testing.T) {
		pos := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		advance(t, pos, "a1a8")
		if pos.Castling.BlackQueenSide {
			t.Error("black queen-side right must be gone after its rook is captured")
		}
		if !pos.Castling.BlackKingSide {
			t.Error("black king-side right must survive")
		}
	})
}
