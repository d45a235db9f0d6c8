package game

import "github.com/lgbarn/gochess/internal/chess"

// ClickOutcome classifies what a board click did.
type ClickOutcome int8

const (
	// ClickIgnored: the click was a no-op. The game is over, it is not
	// the clicking side's turn, or an idle click hit nothing
	// selectable. State is preserved.
	ClickIgnored ClickOutcome = iota

	// ClickSelected: a piece of the clicking side was selected; its
	// legal destinations are cached and returned.
	ClickSelected

	// ClickMoved: a selected piece moved to a valid destination.
	ClickMoved

	// ClickCleared: the click did not match a destination and the
	// selection was dropped without a move.
	ClickCleared
)

// ClickResult reports the outcome of a click.
type ClickResult struct {
	Outcome      ClickOutcome
	Move         chess.Move     // set for ClickMoved
	Destinations []chess.Square // set for ClickSelected
}

// Click drives the two-state selection machine used by click-to-move
// hosts. In the Idle state a click on an own piece selects it; in the
// Selected state a click on a cached destination applies the move and
// any other click returns to Idle with no move. Clicks while the game
// is over or out of turn never change state.
//
// Promotions chosen through clicks promote to a queen; hosts needing a
// piece picker use Request directly.
func (g *Game) Click(by chess.Color, sq chess.Square) ClickResult {
	if g.result.Over() || by != g.pos.ActiveColor {
		return ClickResult{Outcome: ClickIgnored}
	}

	if g.selectedFrom == chess.NoSquare {
		return g.selectAt(by, sq)
	}

	move, ok := g.selectedMove(sq)
	g.clearSelection()
	if !ok {
		return ClickResult{Outcome: ClickCleared}
	}
	g.apply(move)
	return ClickResult{Outcome: ClickMoved, Move: move}
}

// selectAt enters the Selected state when the square holds a piece of
// the clicking side, caching that piece's legal moves.
func (g *Game) selectAt(by chess.Color, sq chess.Square) ClickResult {
	piece := g.pos.At(sq)
	if piece == chess.NoPiece || piece.Color() != by {
		return ClickResult{Outcome: ClickIgnored}
	}
	g.selectedFrom = sq
	g.selectedMoves = g.selectedMoves[:0]
	for _, m := range g.LegalMoves() {
		if m.From == sq {
			g.selectedMoves = append(g.selectedMoves, m)
		}
	}
	dests := make([]chess.Square, 0, len(g.selectedMoves))
	seen := map[chess.Square]bool{}
	for _, m := range g.selectedMoves {
		if !seen[m.To] {
			seen[m.To] = true
			dests = append(dests, m.To)
		}
	}
	return ClickResult{Outcome: ClickSelected, Destinations: dests}
}

// selectedMove finds the cached move landing on the square, preferring
// the queen among promotion alternatives.
func (g *Game) selectedMove(sq chess.Square) (chess.Move, bool) {
	var found chess.Move
	ok := false
	for _, m := range g.selectedMoves {
		if m.To != sq {
			continue
		}
		if !ok || m.Promotion == chess.Queen {
			found = m
			ok = true
		}
	}
	return found, ok
}

func (g *Game) clearSelection() {
	g.selectedFrom = chess.NoSquare
	g.selectedMoves = g.selectedMoves[:0]
}

// Selected returns the currently selected square, or NoSquare when
// idle.
func (g *Game) Selected() chess.Square {
	return g.selectedFrom
}
