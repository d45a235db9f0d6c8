package game

import (
	"encoding/json"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/testutil"
)

func TestSnapshotFields(t *testing.T) {
	g := New(chess.White)
	request(t, g, chess.White, "e2e4")
	snap := g.Snapshot()

	testutil.AssertEqual(t, snap.ActiveColor, "b")
	testutil.AssertEqual(t, snap.PlayerColor, "w")
	testutil.AssertEqual(t, snap.EnPassant, "e3")
	testutil.AssertEqual(t, snap.Squares["e4"], "wP")
	testutil.AssertEqual(t, snap.Squares["e2"], "")
	testutil.AssertEqual(t, snap.History, []string{"e4"})
	testutil.AssertEqual(t, snap.HalfmoveClock, 0)
	testutil.AssertEqual(t, snap.FullmoveNumber, 1)
	testutil.AssertEqual(t, len(snap.Squares), 64, "every square is present")

	testutil.AssertTrue(t, snap.LastMove != nil)
	testutil.AssertEqual(t, *snap.LastMove, LastMoveSnapshot{From: "e2", To: "e4"})
	testutil.AssertTrue(t, snap.Result == nil, "ongoing games omit the result")
	testutil.AssertTrue(t, snap.Castling.WhiteKingSide && snap.Castling.BlackQueenSide)
}

func TestSnapshotRoundTripThroughJSON(t *testing.T) {
	g := New(chess.White)
	request(t, g, chess.White, "e2e4")
	request(t, g, chess.Black, "e7e5")
	request(t, g, chess.White, "g1f3")
	original := g.Snapshot()

	data, err := json.Marshal(original)
	testutil.AssertNoError(t, err)
	var decoded Snapshot
	testutil.AssertNoError(t, json.Unmarshal(data, &decoded))

	restored, err := Restore(decoded)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, restored.Snapshot(), original)
	testutil.AssertEqual(t,
		engine.FormatFEN(restored.Position()),
		engine.FormatFEN(g.Position()),
		"restored position matches")
}

func TestSnapshotCarriesTerminalResult(t *testing.T) {
	g := New(chess.White)
	request(t, g, chess.White, "f2f3")
	request(t, g, chess.Black, "e7e5")
	request(t, g, chess.White, "g2g4")
	request(t, g, chess.Black, "d8h4")
	snap := g.Snapshot()

	testutil.AssertTrue(t, snap.Result != nil)
	testutil.AssertEqual(t, snap.Result.Outcome, "checkmate")
	testutil.AssertEqual(t, snap.Result.Winner, "b")

	// Restore recomputes rather than trusts the stored result.
	restored, err := Restore(snap)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, restored.Result().Outcome, engine.Checkmate)
	testutil.AssertEqual(t, restored.Result().Winner, chess.Black)
}

func TestRestorePreservesRepetitionCounts(t *testing.T) {
	g := New(chess.White)
	for _, mv := range []struct {
		by    chess.Color
		coord string
	}{
		{chess.White, "g1f3"}, {chess.Black, "g8f6"},
		{chess.White, "f3g1"}, {chess.Black, "f6g8"},
	} {
		request(t, g, mv.by, mv.coord)
	}

	restored, err := Restore(g.Snapshot())
	testutil.AssertNoError(t, err)

	// One more shuttle completes the third occurrence in the restored
	// game, proving the counts survived.
	request(t, restored, chess.White, "g1f3")
	request(t, restored, chess.Black, "g8f6")
	request(t, restored, chess.White, "f3g1")
	request(t, restored, chess.Black, "f6g8")
	testutil.AssertEqual(t, restored.Result().Reason, engine.ReasonRepetition)
}

func TestRestoreRejectsMalformedSnapshots(t *testing.T) {
	base := func() Snapshot { return New(chess.White).Snapshot() }

	t.Run("bad colour", func(t *testing.T) {
		snap := base()
		snap.ActiveColor = "x"
		_, err := Restore(snap)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSnapshot)
	})

	t.Run("bad piece code", func(t *testing.T) {
		snap := base()
		snap.Squares["e4"] = "wZ"
		_, err := Restore(snap)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSnapshot)
	})

	t.Run("bad square key", func(t *testing.T) {
		snap := base()
		snap.Squares["z9"] = "wP"
		_, err := Restore(snap)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSnapshot)
	})

	t.Run("bad en passant", func(t *testing.T) {
		snap := base()
		snap.EnPassant = "nope"
		_, err := Restore(snap)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSnapshot)
	})

	t.Run("bad last move", func(t *testing.T) {
		snap := base()
		snap.LastMove = &LastMoveSnapshot{From: "??", To: "e4"}
		_, err := Restore(snap)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSnapshot)
	})
}
