package engine

import (
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
)

// Notation returns the simplified algebraic notation for a legal move
// from the given position: piece letter, capture marker, destination,
// promotion marker, castle strings, and check/mate suffixes. Only
// file-of-origin disambiguation is applied; full SAN disambiguation is
// out of scope.
func Notation(pos *chess.Position, m chess.Move) string {
	var sb strings.Builder

	switch {
	case m.CastleKingSide:
		sb.WriteString("O-O")
	case m.CastleQueenSide:
		sb.WriteString("O-O-O")
	case m.Piece.Type() == chess.Pawn:
		if m.IsCapture() {
			sb.WriteByte(byte('a' + m.From.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	default:
		sb.WriteByte(m.Piece.Type().Letter())
		if ambiguousFrom(pos, m) {
			sb.WriteByte(byte('a' + m.From.File()))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	after := pos.Copy()
	ApplyMove(after, m)
	if IsInCheck(after, after.ActiveColor) {
		if HasLegalMoves(after) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}

	return sb.String()
}

// ambiguousFrom reports whether another piece of the same type and
// colour can also legally move to the destination.
func ambiguousFrom(pos *chess.Position, m chess.Move) bool {
	for _, other := range LegalMoves(pos) {
		if other.From != m.From && other.To == m.To && other.Piece == m.Piece {
			return true
		}
	}
	return false
}
