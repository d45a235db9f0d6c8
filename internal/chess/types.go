// Package chess provides the core chess types: colours, pieces, squares,
// moves, and positions. Everything here is a plain value type with pure
// conversions; the movement rules live in the engine package.
package chess

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/errors"
)

// Color represents the colour of a piece or player.
type Color int8

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Code returns the single-letter code used in piece codes and snapshots.
func (c Color) Code() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// ParseColor converts a colour code ('w' or 'b') back to a Color.
func ParseColor(code byte) (Color, error) {
	switch code {
	case 'w':
		return White, nil
	case 'b':
		return Black, nil
	}
	return White, fmt.Errorf("colour code %q: %w", string(code), errors.ErrInvalidPiece)
}

// PieceType represents a chess piece type without colour.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeLetters = [...]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
var pieceTypeNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// Letter returns the uppercase letter for a piece type ('P', 'N', ...).
func (t PieceType) Letter() byte {
	if t < Pawn || t > King {
		return '?'
	}
	return pieceTypeLetters[t]
}

// String returns the name of the piece type.
func (t PieceType) String() string {
	if t < NoPieceType || t > King {
		return "Unknown"
	}
	return pieceTypeNames[t]
}

// ParsePieceType converts an uppercase piece letter to a PieceType.
func ParsePieceType(letter byte) (PieceType, error) {
	switch letter {
	case 'P':
		return Pawn, nil
	case 'N':
		return Knight, nil
	case 'B':
		return Bishop, nil
	case 'R':
		return Rook, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	}
	return NoPieceType, fmt.Errorf("piece letter %q: %w", string(letter), errors.ErrInvalidPiece)
}

// Piece is a coloured piece encoded as (type << 1) | colour.
// The zero value is NoPiece, the empty square.
type Piece int8

// NoPiece is the empty square.
const NoPiece Piece = 0

// NewPiece creates a coloured piece value.
func NewPiece(c Color, t PieceType) Piece {
	return Piece(int8(t)<<1 | int8(c))
}

// Color extracts the colour. Only meaningful when the piece is not NoPiece.
func (p Piece) Color() Color {
	return Color(p & 1)
}

// Type extracts the piece type. NoPiece yields NoPieceType.
func (p Piece) Type() PieceType {
	return PieceType(p >> 1)
}

// Code returns the two-character piece code ("wP", "bK", ...), or the
// empty string for NoPiece.
func (p Piece) Code() string {
	if p == NoPiece {
		return ""
	}
	return string([]byte{p.Color().Code(), p.Type().Letter()})
}

// String returns a readable form such as "White Knight".
func (p Piece) String() string {
	if p == NoPiece {
		return "Empty"
	}
	return p.Color().String() + " " + p.Type().String()
}

// ParsePiece converts a two-character piece code back to a Piece.
// The empty string maps to NoPiece.
func ParsePiece(code string) (Piece, error) {
	if code == "" {
		return NoPiece, nil
	}
	if len(code) != 2 {
		return NoPiece, fmt.Errorf("piece code %q: %w", code, errors.ErrInvalidPiece)
	}
	c, err := ParseColor(code[0])
	if err != nil {
		return NoPiece, err
	}
	t, err := ParsePieceType(code[1])
	if err != nil {
		return NoPiece, err
	}
	return NewPiece(c, t), nil
}
