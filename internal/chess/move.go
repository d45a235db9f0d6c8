package chess

// Move describes a single position transition. It is a plain value and
// is never mutated after creation. At most one of EnPassant,
// CastleKingSide, and CastleQueenSide is set; a capturing promotion
// carries both Captured and Promotion.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured, NoPiece for a quiet move. For an en passant
	// capture this is the passed pawn even though To is empty.
	Captured Piece

	// The piece type promoted to, NoPieceType when not a promotion.
	Promotion PieceType

	// Special-move flags.
	EnPassant       bool
	CastleKingSide  bool
	CastleQueenSide bool
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece || m.EnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.CastleKingSide || m.CastleQueenSide
}

// Coord returns the coordinate form of the move ("e2e4", "e7e8q").
func (m Move) Coord() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string([]byte{m.Promotion.Letter() + ('a' - 'A')})
	}
	return s
}
