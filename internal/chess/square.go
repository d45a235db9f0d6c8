package chess

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/errors"
)

// Square identifies a board square as a rank-major index: a1 is 0, b1 is
// 1, and h8 is 63.
type Square int8

// NoSquare marks the absence of a square, e.g. no en passant target.
const NoSquare Square = -1

// MakeSquare builds a square from a file and rank, both 0-7.
func MakeSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file 0-7 (a-h).
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the rank 0-7 (1-8).
func (s Square) Rank() int {
	return int(s) / 8
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < 64
}

// String returns the algebraic form ("e4"). NoSquare yields "-".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare converts an algebraic coordinate ("a1".."h8") to a Square.
// It fails with ErrInvalidSquare on a malformed coordinate.
func ParseSquare(coord string) (Square, error) {
	if len(coord) != 2 {
		return NoSquare, fmt.Errorf("coordinate %q: %w", coord, errors.ErrInvalidSquare)
	}
	file := int(coord[0] - 'a')
	rank := int(coord[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("coordinate %q: %w", coord, errors.ErrInvalidSquare)
	}
	return MakeSquare(file, rank), nil
}
