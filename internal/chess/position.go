package chess

import "strings"

// CastlingRights tracks the four independent castling eligibilities.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// Clone returns a structural copy of the rights.
func (cr CastlingRights) Clone() CastlingRights {
	return cr
}

// ClearColor revokes both rights for a colour, as when its king moves.
func (cr *CastlingRights) ClearColor(c Color) {
	if c == White {
		cr.WhiteKingSide = false
		cr.WhiteQueenSide = false
	} else {
		cr.BlackKingSide = false
		cr.BlackQueenSide = false
	}
}

// String returns the FEN-style castling field ("KQkq", "-", ...).
func (cr CastlingRights) String() string {
	var sb strings.Builder
	if cr.WhiteKingSide {
		sb.WriteByte('K')
	}
	if cr.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if cr.BlackKingSide {
		sb.WriteByte('k')
	}
	if cr.BlackQueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Position is the canonical chess position: piece placement plus the
// bookkeeping needed to apply the rules. The board is a fixed array so
// copying a Position copies the placement by value; no two positions
// ever alias the same board.
type Position struct {
	Board          [64]Piece
	ActiveColor    Color
	Castling       CastlingRights
	EnPassant      Square // capture landing square, NoSquare when unset
	HalfmoveClock  int    // halfmoves since the last pawn move or capture
	FullmoveNumber int
}

// At returns the piece on a square.
func (p *Position) At(sq Square) Piece {
	return p.Board[sq]
}

// Set places a piece on a square.
func (p *Position) Set(sq Square, piece Piece) {
	p.Board[sq] = piece
}

// Copy returns an independently owned copy of the position.
func (p *Position) Copy() *Position {
	q := *p
	q.Castling = p.Castling.Clone()
	return &q
}

// KingSquare returns the square of the given colour's king, or NoSquare
// if the board has none. A reachable position always has exactly one
// king per colour.
func (p *Position) KingSquare(c Color) Square {
	king := NewPiece(c, King)
	for sq := Square(0); sq < 64; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// RepetitionKey returns the canonical string used for threefold
// repetition counting. It encodes placement, side to move, castling
// rights, and the en passant file, and deliberately excludes the move
// clocks so that positions differing only in clock values count as
// repeats.
func (p *Position) RepetitionKey() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Board[MakeSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := piece.Type().Letter()
			if piece.Color() == Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(p.ActiveColor.Code())
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	if p.EnPassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteByte(byte('a' + p.EnPassant.File()))
	}
	return sb.String()
}
