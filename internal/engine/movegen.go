package engine

import "github.com/lgbarn/gochess/internal/chess"

// promotionTypes lists the promotion expansion order: a push or capture
// into the last rank produces one move per entry.
var promotionTypes = [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PseudoLegalMoves generates every move consistent with the piece
// movement rules for the side to move, ignoring whether the mover's
// king is left in check.
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.At(sq)
		if piece == chess.NoPiece || piece.Color() != pos.ActiveColor {
			continue
		}
		switch piece.Type() {
		case chess.Pawn:
			moves = pawnMoves(pos, sq, moves)
		case chess.Knight:
			moves = offsetMoves(pos, sq, knightOffsets[:], moves)
		case chess.Bishop:
			moves = slidingMoves(pos, sq, diagonalDirs[:], moves)
		case chess.Rook:
			moves = slidingMoves(pos, sq, straightDirs[:], moves)
		case chess.Queen:
			moves = slidingMoves(pos, sq, diagonalDirs[:], moves)
			moves = slidingMoves(pos, sq, straightDirs[:], moves)
		case chess.King:
			moves = offsetMoves(pos, sq, kingOffsets[:], moves)
			moves = castleMoves(pos, sq, moves)
		}
	}
	return moves
}

// LegalMoves filters the pseudo-legal moves by applying each one to a
// scratch copy of the position (placement, castling, and en passant
// only; no clocks) and discarding moves after which the mover's own
// king is attacked. Deliberately simulate-then-discard rather than
// incremental: correctness over speed.
func LegalMoves(pos *chess.Position) []chess.Move {
	pseudo := PseudoLegalMoves(pos)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		scratch := pos.Copy()
		applyPlacement(scratch, m)
		if !IsInCheck(scratch, pos.ActiveColor) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, stopping at the first one found.
func HasLegalMoves(pos *chess.Position) bool {
	for _, m := range PseudoLegalMoves(pos) {
		scratch := pos.Copy()
		applyPlacement(scratch, m)
		if !IsInCheck(scratch, pos.ActiveColor) {
			return true
		}
	}
	return false
}

// pawnMoves appends the pawn pushes, captures, en passant captures, and
// promotion expansions from the given square.
func pawnMoves(pos *chess.Position, from chess.Square, moves []chess.Move) []chess.Move {
	piece := pos.At(from)
	colour := piece.Color()
	dir, startRank, promoRank := 1, 1, 7
	if colour == chess.Black {
		dir, startRank, promoRank = -1, 6, 0
	}
	file, rank := from.File(), from.Rank()
	toRank := rank + dir
	if toRank < 0 || toRank > 7 {
		return moves
	}

	// Single push, and double push when both squares ahead are empty.
	if to := chess.MakeSquare(file, toRank); pos.At(to) == chess.NoPiece {
		moves = appendPawnMove(moves, chess.Move{From: from, To: to, Piece: piece}, toRank == promoRank)
		if rank == startRank {
			if to2 := chess.MakeSquare(file, rank+2*dir); pos.At(to2) == chess.NoPiece {
				moves = append(moves, chess.Move{From: from, To: to2, Piece: piece})
			}
		}
	}

	// Diagonal captures, including en passant onto the target square.
	for _, df := range [2]int{-1, 1} {
		toFile := file + df
		if toFile < 0 || toFile > 7 {
			continue
		}
		to := chess.MakeSquare(toFile, toRank)
		target := pos.At(to)
		switch {
		case target != chess.NoPiece && target.Color() != colour:
			m := chess.Move{From: from, To: to, Piece: piece, Captured: target}
			moves = appendPawnMove(moves, m, toRank == promoRank)
		case target == chess.NoPiece && to == pos.EnPassant:
			victim := pos.At(chess.MakeSquare(toFile, rank))
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: victim, EnPassant: true})
		}
	}
	return moves
}

// appendPawnMove appends the move, expanded into the four promotion
// moves when it reaches the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move, promotes bool) []chess.Move {
	if !promotes {
		return append(moves, m)
	}
	for _, t := range promotionTypes {
		pm := m
		pm.Promotion = t
		moves = append(moves, pm)
	}
	return moves
}

// offsetMoves appends the fixed-offset moves of a knight or king,
// bounded to the board and blocked only by own-colour occupancy.
func offsetMoves(pos *chess.Position, from chess.Square, offsets [][2]int, moves []chess.Move) []chess.Move {
	piece := pos.At(from)
	colour := piece.Color()
	file, rank := from.File(), from.Rank()
	for _, off := range offsets {
		f, r := file+off[0], rank+off[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		to := chess.MakeSquare(f, r)
		target := pos.At(to)
		if target != chess.NoPiece && target.Color() == colour {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
	}
	return moves
}

// slidingMoves appends the ray moves of a bishop, rook, or queen along
// the given directions, stopping at the first occupied square.
func slidingMoves(pos *chess.Position, from chess.Square, dirs [][2]int, moves []chess.Move) []chess.Move {
	piece := pos.At(from)
	colour := piece.Color()
	file, rank := from.File(), from.Rank()
	for _, dir := range dirs {
		f, r := file+dir[0], rank+dir[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			to := chess.MakeSquare(f, r)
			target := pos.At(to)
			if target != chess.NoPiece {
				if target.Color() != colour {
					moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
			f += dir[0]
			r += dir[1]
		}
	}
	return moves
}

// castleMoves appends the castling moves available from the king's home
// square: the rights flag must be set, the corner must still hold the
// rook, the squares between king and rook must be empty, and the king's
// current, crossing, and destination squares must all be unattacked.
// A castle that would resolve into a discovered problem is filtered
// again by the legality step.
func castleMoves(pos *chess.Position, from chess.Square, moves []chess.Move) []chess.Move {
	colour := pos.ActiveColor
	rank := 0
	kingSide, queenSide := pos.Castling.WhiteKingSide, pos.Castling.WhiteQueenSide
	if colour == chess.Black {
		rank = 7
		kingSide, queenSide = pos.Castling.BlackKingSide, pos.Castling.BlackQueenSide
	}
	if from != chess.MakeSquare(4, rank) {
		return moves
	}
	enemy := colour.Opposite()
	rook := chess.NewPiece(colour, chess.Rook)
	king := pos.At(from)

	if kingSide && pos.At(chess.MakeSquare(7, rank)) == rook {
		f := chess.MakeSquare(5, rank)
		g := chess.MakeSquare(6, rank)
		if pos.At(f) == chess.NoPiece && pos.At(g) == chess.NoPiece &&
			!IsSquareAttacked(pos, from, enemy) &&
			!IsSquareAttacked(pos, f, enemy) &&
			!IsSquareAttacked(pos, g, enemy) {
			moves = append(moves, chess.Move{From: from, To: g, Piece: king, CastleKingSide: true})
		}
	}
	if queenSide && pos.At(chess.MakeSquare(0, rank)) == rook {
		b := chess.MakeSquare(1, rank)
		c := chess.MakeSquare(2, rank)
		d := chess.MakeSquare(3, rank)
		if pos.At(b) == chess.NoPiece && pos.At(c) == chess.NoPiece && pos.At(d) == chess.NoPiece &&
			!IsSquareAttacked(pos, from, enemy) &&
			!IsSquareAttacked(pos, d, enemy) &&
			!IsSquareAttacked(pos, c, enemy) {
			moves = append(moves, chess.Move{From: from, To: c, Piece: king, CastleQueenSide: true})
		}
	}
	return moves
}
