package game

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/testutil"
)

// request submits a coordinate move, failing the test on rejection.
func request(t *testing.T, g *Game, by chess.Color, coord string) chess.Move {
	t.Helper()
	from := testutil.MustSquare(t, coord[:2])
	to := testutil.MustSquare(t, coord[2:4])
	promotion := chess.NoPieceType
	if len(coord) == 5 {
		var err error
		promotion, err = chess.ParsePieceType(coord[4])
		if err != nil {
			t.Fatalf("malformed promotion in %q: %v", coord, err)
		}
	}
	m, err := g.Request(by, from, to, promotion)
	if err != nil {
		t.Fatalf("Request(%s) error: %v", coord, err)
	}
	return m
}

func TestRequestAppliesLegalMove(t *testing.T) {
	g := New(chess.White)
	m := request(t, g, chess.White, "e2e4")

	testutil.AssertEqual(t, m.Coord(), "e2e4")
	testutil.AssertEqual(t, g.History(), []string{"e4"})
	testutil.AssertEqual(t, g.ActiveColor(), chess.Black)

	from, to, ok := g.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, from.String(), "e2")
	testutil.AssertEqual(t, to.String(), "e4")
}

func TestRequestOutOfTurn(t *testing.T) {
	g := New(chess.White)
	_, err := g.Request(chess.Black, testutil.MustSquare(t, "e7"), testutil.MustSquare(t, "e5"), chess.NoPieceType)
	testutil.AssertErrorIs(t, err, errors.ErrOutOfTurn)
	testutil.AssertEqual(t, len(g.History()), 0, "a rejected request leaves no trace")
}

func TestRequestIllegalMove(t *testing.T) {
	g := New(chess.White)
	_, err := g.Request(chess.White, testutil.MustSquare(t, "e2"), testutil.MustSquare(t, "e5"), chess.NoPieceType)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	var moveErr *errors.MoveError
	testutil.AssertTrue(t, stderrors.As(err, &moveErr), "rejection carries move context")
	testutil.AssertEqual(t, moveErr.From, "e2")
	testutil.AssertEqual(t, moveErr.To, "e5")

	testutil.AssertEqual(t, g.ActiveColor(), chess.White, "state unchanged after rejection")
}

func TestRequestPromotionNeedsExactPiece(t *testing.T) {
	g, err := NewFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.White)
	testutil.AssertNoError(t, err)

	// A bare push into the last rank is not in the legal set; only the
	// four explicit promotions are.
	_, err = g.Request(chess.White, testutil.MustSquare(t, "a7"), testutil.MustSquare(t, "a8"), chess.NoPieceType)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	m := request(t, g, chess.White, "a7a8N")
	testutil.AssertEqual(t, m.Promotion, chess.Knight)
}

func TestRequestAfterGameOver(t *testing.T) {
	g, err := NewFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, g.Result().Over(), "fool's mate position is terminal")

	_, err = g.Request(chess.White, testutil.MustSquare(t, "e2"), testutil.MustSquare(t, "e4"), chess.NoPieceType)
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestFoolsMateGame(t *testing.T) {
	g := New(chess.White)
	request(t, g, chess.White, "f2f3")
	request(t, g, chess.Black, "e7e5")
	request(t, g, chess.White, "g2g4")
	request(t, g, chess.Black, "d8h4")

	res := g.Result()
	testutil.AssertEqual(t, res.Outcome, engine.Checkmate)
	testutil.AssertEqual(t, res.Winner, chess.Black)
	testutil.AssertEqual(t, g.History(), []string{"f3", "e5", "g4", "Qh4#"})
	testutil.AssertEqual(t, g.LegalMoves(), []chess.Move(nil), "no moves after mate")
}

func TestThreefoldRepetitionEndsGame(t *testing.T) {
	g := New(chess.White)
	shuffle := []struct {
		by    chess.Color
		coord string
	}{
		{chess.White, "g1f3"}, {chess.Black, "g8f6"},
		{chess.White, "f3g1"}, {chess.Black, "f6g8"},
		{chess.White, "g1f3"}, {chess.Black, "g8f6"},
		{chess.White, "f3g1"},
	}
	for _, mv := range shuffle {
		request(t, g, mv.by, mv.coord)
		testutil.AssertFalse(t, g.Result().Over(), "premature end after %s", mv.coord)
	}

	// The final retreat produces the starting position for the third
	// time.
	request(t, g, chess.Black, "f6g8")
	res := g.Result()
	testutil.AssertEqual(t, res.Outcome, engine.Draw)
	testutil.AssertEqual(t, res.Reason, engine.ReasonRepetition)
}

func TestFiftyMoveRuleEndsGame(t *testing.T) {
	g, err := NewFromFEN("8/8/8/8/8/4k3/8/R3K3 w - - 99 80", chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, g.Result().Over())

	request(t, g, chess.White, "a1a2")
	res := g.Result()
	testutil.AssertEqual(t, res.Outcome, engine.Draw)
	testutil.AssertEqual(t, res.Reason, engine.ReasonFiftyMoves)
}

func TestPositionReturnsIndependentCopy(t *testing.T) {
	g := New(chess.White)
	pos := g.Position()
	engine.ApplyMove(pos, engine.LegalMoves(pos)[0])
	testutil.AssertEqual(t, g.ActiveColor(), chess.White, "mutating the copy must not touch the game")
}

func TestNewFromFENRejectsGarbage(t *testing.T) {
	_, err := NewFromFEN("not a fen at all", chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}
