// Package eval provides the static position evaluation: material
// balance plus piece-square positional bonuses, scored in centipawns
// from the perspective of a requested colour. Deterministic and
// stateless.
package eval

import "github.com/lgbarn/gochess/internal/chess"

// PawnValue is the material value of a pawn, used by the search jitter
// band as its unit.
const PawnValue = 100

// pieceValues is indexed by chess.PieceType. The king carries no
// material value; losing it is handled by the mate scores in search.
var pieceValues = [...]int{0, PawnValue, 320, 330, 500, 900, 0}

// PieceValue returns the material value of a piece type in centipawns.
func PieceValue(t chess.PieceType) int {
	if t < chess.Pawn || t > chess.King {
		return 0
	}
	return pieceValues[t]
}

// Evaluate scores the position for the given colour: the sum over all
// pieces of material value plus piece-square bonus, added for
// forColor's pieces and subtracted for the opponent's.
func Evaluate(pos *chess.Position, forColor chess.Color) int {
	score := 0
	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.At(sq)
		if piece == chess.NoPiece {
			continue
		}
		value := pieceValues[piece.Type()] + pieceSquareBonus(piece, sq)
		if piece.Color() == forColor {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// pieceSquareBonus looks up the positional bonus for a piece on a
// square. The tables are white-oriented; a black piece's square is
// mirrored vertically so a single table serves both colours.
func pieceSquareBonus(piece chess.Piece, sq chess.Square) int {
	idx := int(sq)
	if piece.Color() == chess.Black {
		idx = int(mirror(sq))
	}
	switch piece.Type() {
	case chess.Pawn:
		return pawnTable[idx]
	case chess.Knight:
		return knightTable[idx]
	case chess.Bishop:
		return bishopTable[idx]
	case chess.Rook:
		return rookTable[idx]
	case chess.Queen:
		return queenTable[idx]
	case chess.King:
		return kingTable[idx]
	}
	return 0
}

// mirror flips a square vertically (a1 <-> a8).
func mirror(sq chess.Square) chess.Square {
	return sq ^ 56
}
