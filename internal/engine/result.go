package engine

import "github.com/lgbarn/gochess/internal/chess"

// Outcome classifies the state of a game.
type Outcome int8

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Draw reasons reported in Result.Reason.
const (
	ReasonFiftyMoves   = "Fifty-move rule"
	ReasonRepetition   = "Threefold repetition"
	ReasonInsufficient = "Insufficient material"
)

// Result is the terminal status of a position within a game.
type Result struct {
	Outcome Outcome
	Winner  chess.Color // meaningful only when Outcome is Checkmate
	Reason  string      // set for draws
}

// Over reports whether the game has ended.
func (r Result) Over() bool {
	return r.Outcome != Ongoing
}

// ComputeResult derives the terminal status for the side to move.
// repetitions maps repetition keys to occurrence counts over the game
// so far, including the current position.
//
// Priority: no legal moves decides checkmate or stalemate; otherwise
// the fifty-move rule, then threefold repetition, then insufficient
// material force a draw; otherwise the game is ongoing.
func ComputeResult(pos *chess.Position, repetitions map[string]int) Result {
	if !HasLegalMoves(pos) {
		if IsInCheck(pos, pos.ActiveColor) {
			return Result{Outcome: Checkmate, Winner: pos.ActiveColor.Opposite()}
		}
		return Result{Outcome: Stalemate}
	}
	if pos.HalfmoveClock >= 100 {
		return Result{Outcome: Draw, Reason: ReasonFiftyMoves}
	}
	for _, count := range repetitions {
		if count >= 3 {
			return Result{Outcome: Draw, Reason: ReasonRepetition}
		}
	}
	if HasInsufficientMaterial(pos) {
		return Result{Outcome: Draw, Reason: ReasonInsufficient}
	}
	return Result{}
}

// HasInsufficientMaterial reports whether neither side can mate. The
// policy is a conservative approximation: bare kings, a lone minor
// piece against a bare king, and bishop against bishop are all treated
// as insufficient regardless of bishop square colour.
func HasInsufficientMaterial(pos *chess.Position) bool {
	var white, black []chess.PieceType
	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.At(sq)
		if piece == chess.NoPiece {
			continue
		}
		t := piece.Type()
		if t == chess.King {
			continue
		}
		// Any pawn, rook, or queen is mating material.
		if t == chess.Pawn || t == chess.Rook || t == chess.Queen {
			return false
		}
		if piece.Color() == chess.White {
			white = append(white, t)
		} else {
			black = append(black, t)
		}
	}

	// K vs K.
	if len(white) == 0 && len(black) == 0 {
		return true
	}
	// K + single minor vs K.
	if len(white) == 0 && len(black) == 1 {
		return true
	}
	if len(black) == 0 && len(white) == 1 {
		return true
	}
	// K+B vs K+B, any square colours.
	if len(white) == 1 && len(black) == 1 {
		return white[0] == chess.Bishop && black[0] == chess.Bishop
	}
	return false
}
