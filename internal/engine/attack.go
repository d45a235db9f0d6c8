// Package engine implements the chess rules: move generation, attack
// and check detection, position transition, and terminal-result
// detection. All functions are pure over the Position they are given;
// callers own their copies.
package engine

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/chess"
)

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsSquareAttacked reports whether the given square is attacked by any
// piece of the given colour. The attack patterns mirror the movement
// rules exactly; a sliding ray stops at its first blocker.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, by chess.Color) bool {
	file, rank := sq.File(), sq.Rank()

	// Pawn attacks. A white pawn attacks diagonally upward, so it sits
	// one rank below the attacked square.
	pawn := chess.NewPiece(by, chess.Pawn)
	pawnRank := rank - 1
	if by == chess.Black {
		pawnRank = rank + 1
	}
	if pawnRank >= 0 && pawnRank <= 7 {
		if file > 0 && pos.At(chess.MakeSquare(file-1, pawnRank)) == pawn {
			return true
		}
		if file < 7 && pos.At(chess.MakeSquare(file+1, pawnRank)) == pawn {
			return true
		}
	}

	// Knight jumps.
	knight := chess.NewPiece(by, chess.Knight)
	for _, off := range knightOffsets {
		f, r := file+off[0], rank+off[1]
		if f >= 0 && f <= 7 && r >= 0 && r <= 7 && pos.At(chess.MakeSquare(f, r)) == knight {
			return true
		}
	}

	// King adjacency.
	king := chess.NewPiece(by, chess.King)
	for _, off := range kingOffsets {
		f, r := file+off[0], rank+off[1]
		if f >= 0 && f <= 7 && r >= 0 && r <= 7 && pos.At(chess.MakeSquare(f, r)) == king {
			return true
		}
	}

	// Sliding pieces along diagonals.
	bishop := chess.NewPiece(by, chess.Bishop)
	queen := chess.NewPiece(by, chess.Queen)
	for _, dir := range diagonalDirs {
		f, r := file+dir[0], rank+dir[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			piece := pos.At(chess.MakeSquare(f, r))
			if piece != chess.NoPiece {
				if piece == bishop || piece == queen {
					return true
				}
				break // Blocked
			}
			f += dir[0]
			r += dir[1]
		}
	}

	// Sliding pieces along ranks and files.
	rook := chess.NewPiece(by, chess.Rook)
	for _, dir := range straightDirs {
		f, r := file+dir[0], rank+dir[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			piece := pos.At(chess.MakeSquare(f, r))
			if piece != chess.NoPiece {
				if piece == rook || piece == queen {
					return true
				}
				break // Blocked
			}
			f += dir[0]
			r += dir[1]
		}
	}

	return false
}

// IsInCheck reports whether the given colour's king is attacked. A
// position reachable from the standard start always has exactly one
// king per colour; a missing king is an internal invariant violation,
// not a user-facing condition.
func IsInCheck(pos *chess.Position, colour chess.Color) bool {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		panic(fmt.Sprintf("engine: no %s king on the board", colour))
	}
	return IsSquareAttacked(pos, king, colour.Opposite())
}
