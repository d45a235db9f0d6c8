package engine

import "github.com/lgbarn/gochess/internal/chess"

// ApplyMove applies a legal move to the position, mutating it in place.
// The move must come from LegalMoves for this position; callers enforce
// that, typically by re-deriving the legal set and matching.
//
// Effects, in order: the halfmove clock resets on a pawn move or
// capture and increments otherwise; the en passant target is cleared
// and conditionally re-set for a double pawn push; the placement is
// updated (including en passant victim removal, castle rook
// relocation, promotion replacement, and castling-rights clearing);
// the side to move flips; the fullmove number increments after Black's
// move.
func ApplyMove(pos *chess.Position, m chess.Move) {
	mover := pos.ActiveColor
	if m.Piece.Type() == chess.Pawn || m.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	applyPlacement(pos, m)
	pos.ActiveColor = mover.Opposite()
	if mover == chess.Black {
		pos.FullmoveNumber++
	}
}

// applyPlacement applies the placement part of a move: board contents,
// castling rights, and the en passant target. The clocks and side to
// move are untouched, which is what the legality filter needs for its
// scratch copies.
func applyPlacement(pos *chess.Position, m chess.Move) {
	colour := m.Piece.Color()

	pos.Set(m.From, chess.NoPiece)

	// An en passant capture removes the passed pawn, which sits behind
	// the landing square on the mover's origin rank.
	if m.EnPassant {
		pos.Set(chess.MakeSquare(m.To.File(), m.From.Rank()), chess.NoPiece)
	}

	placed := m.Piece
	if m.IsPromotion() {
		placed = chess.NewPiece(colour, m.Promotion)
	}
	pos.Set(m.To, placed)

	// Castling additionally relocates the corresponding rook.
	switch {
	case m.CastleKingSide:
		rank := m.From.Rank()
		rookFrom := chess.MakeSquare(7, rank)
		pos.Set(chess.MakeSquare(5, rank), pos.At(rookFrom))
		pos.Set(rookFrom, chess.NoPiece)
	case m.CastleQueenSide:
		rank := m.From.Rank()
		rookFrom := chess.MakeSquare(0, rank)
		pos.Set(chess.MakeSquare(3, rank), pos.At(rookFrom))
		pos.Set(rookFrom, chess.NoPiece)
	}

	if m.Piece.Type() == chess.King {
		pos.Castling.ClearColor(colour)
	}
	refreshRookRights(pos)

	pos.EnPassant = chess.NoSquare
	if m.Piece.Type() == chess.Pawn {
		if diff := m.To.Rank() - m.From.Rank(); diff == 2 || diff == -2 {
			pos.EnPassant = chess.MakeSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		}
	}
}

// refreshRookRights clears a castling flag whenever its corner square
// no longer holds the matching rook. This covers both a rook that
// moved away and a rook that was captured on its home square.
func refreshRookRights(pos *chess.Position) {
	whiteRook := chess.NewPiece(chess.White, chess.Rook)
	blackRook := chess.NewPiece(chess.Black, chess.Rook)
	if pos.At(chess.MakeSquare(0, 0)) != whiteRook {
		pos.Castling.WhiteQueenSide = false
	}
	if pos.At(chess.MakeSquare(7, 0)) != whiteRook {
		pos.Castling.WhiteKingSide = false
	}
	if pos.At(chess.MakeSquare(0, 7)) != blackRook {
		pos.Castling.BlackQueenSide = false
	}
	if pos.At(chess.MakeSquare(7, 7)) != blackRook {
		pos.Castling.BlackKingSide = false
	}
}
