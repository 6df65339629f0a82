package game

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
	"github.com/lgbarn/wildchess-go/internal/errors"
	"github.com/lgbarn/wildchess-go/internal/pgn"
	"github.com/lgbarn/wildchess-go/internal/testutil"
	"github.com/lgbarn/wildchess-go/internal/variant"
)

func TestNewGame(t *testing.T) {
	g, err := New(variant.Chess())
	testutil.AssertNoError(t, err)

	_, err = uuid.Parse(g.ID)
	testutil.AssertNoError(t, err, "id %q", g.ID)
	testutil.AssertEqual(t, g.StartFEN(), engine.InitialFEN)
	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertEqual(t, g.Tags(), pgn.Tags{
		{Name: pgn.TagVariant, Value: "chess"},
		{Name: pgn.TagGameID, Value: g.ID},
	})

	other, err := New(variant.Chess())
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, other.ID != g.ID, "ids should differ")
}

func TestNewGameNonStandardStart(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/8/4K2R b K - 3 20"
	g, err := New(variant.Chess(), WithID("g1"), WithStartFEN(fen))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.ID, "g1")
	testutil.AssertEqual(t, g.Tags(), pgn.Tags{
		{Name: pgn.TagVariant, Value: "chess"},
		{Name: pgn.TagSetUp, Value: "1"},
		{Name: pgn.TagFEN, Value: fen},
		{Name: pgn.TagGameID, Value: "g1"},
	})

	nc, err := New(variant.NoCastling())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, nc.Tags().Get(pgn.TagSetUp), "1")
	testutil.AssertEqual(t, nc.Tags().Get(pgn.TagFEN), nc.StartFEN())

	_, err = New(variant.Chess(), WithID("bad"), WithStartFEN("not a fen"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	var ge *errors.GameError
	testutil.AssertTrue(t, stderrors.As(err, &ge), "got %T", err)
	testutil.AssertEqual(t, ge.GameID, "bad")
}

func TestPlayNotifiesListeners(t *testing.T) {
	var events []MoveEvent
	g, err := New(variant.Chess(), WithID("game"), WithListener(ListenerFunc(func(e MoveEvent) {
		events = append(events, e)
	})))
	testutil.AssertNoError(t, err)

	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "O-O"}
	testutil.AssertNoError(t, g.PlayAll(moves))

	const want = "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4"
	testutil.AssertEqual(t, g.FEN(), want)
	testutil.AssertEqual(t, g.Ply(), len(moves))
	testutil.AssertEqual(t, g.MoveText(), moves)

	testutil.AssertEqual(t, len(events), len(moves))
	for i, e := range events {
		testutil.AssertEqual(t, e.GameID, "game")
		testutil.AssertEqual(t, e.Ply, i+1)
	}
	last := events[len(events)-1]
	testutil.AssertEqual(t, last.FEN, want)
	_, ok := last.Move.(*chess.CastlingMove)
	testutil.AssertTrue(t, ok, "last move is %T", last.Move)
}

func TestPlayErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"illegal target", "e2e5", errors.ErrIllegalMove},
		{"empty square", "e3e4", errors.ErrIllegalMove},
		{"garbage", "zz", errors.ErrParseFailure},
		{"bad square", "i2i4", errors.ErrInvalidSquare},
		{"bad promotion letter", "e7e8p", errors.ErrInvalidPiece},
		{"castling blocked", "O-O", errors.ErrIllegalOperation},
		{"hidden in chess", "?", errors.ErrUnsupported},
		{"hidden capture in chess", "?xe7", errors.ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(variant.Chess(), WithID("x"))
			testutil.AssertNoError(t, err)

			err = g.Play(tt.text)
			testutil.AssertErrorIs(t, err, tt.want)

			var ge *errors.GameError
			testutil.AssertTrue(t, stderrors.As(err, &ge), "got %T", err)
			if ge != nil {
				testutil.AssertEqual(t, ge.PlyNum, 1)
				testutil.AssertEqual(t, ge.MoveText, tt.text)
				testutil.AssertEqual(t, ge.Variant, "chess")
			}
			testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
			testutil.AssertEqual(t, g.Ply(), 0)
		})
	}
}

func TestApplyRejectsForeignMove(t *testing.T) {
	g, err := New(variant.Chess())
	testutil.AssertNoError(t, err)

	atomic := variant.Atomic()
	pos, err := atomic.NewPosition()
	testutil.AssertNoError(t, err)
	m, err := atomic.CreateMove(pos, chess.MustSquare("e2"), chess.MustSquare("e4"), chess.NoKind)
	testutil.AssertNoError(t, err)

	testutil.AssertErrorIs(t, g.Apply(m), errors.ErrVariantMismatch)
	testutil.AssertErrorIs(t, g.Apply(nil), errors.ErrIllegalMove)
	testutil.AssertEqual(t, g.Ply(), 0)
}

func TestKriegspielGame(t *testing.T) {
	g, err := New(variant.Kriegspiel())
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, g.Tags().Has(pgn.TagSetUp))

	testutil.AssertNoError(t, g.PlayAll([]string{"e2e4", "?", "?xd7"}))
	testutil.AssertEqual(t, g.MoveText(), []string{"e2e4", "?", "?xd7"})
	testutil.AssertEqual(t, g.Position().PieceAt(chess.MustSquare("d7")), chess.NoPiece)

	err = g.Play("?xd5")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestUndoRedo(t *testing.T) {
	count := 0
	g, err := New(variant.Chess(), WithListener(ListenerFunc(func(MoveEvent) { count++ })))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, g.Undo())
	testutil.AssertFalse(t, g.Redo())

	testutil.AssertNoError(t, g.PlayAll([]string{"e2e4", "e7e5"}))
	afterE4 := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

	testutil.AssertTrue(t, g.Undo())
	testutil.AssertEqual(t, g.Ply(), 1)
	testutil.AssertEqual(t, g.FEN(), afterE4)

	testutil.AssertTrue(t, g.Redo())
	testutil.AssertEqual(t, g.Ply(), 2)
	testutil.AssertEqual(t, g.MoveText(), []string{"e2e4", "e7e5"})
	testutil.AssertEqual(t, count, 3)

	testutil.AssertTrue(t, g.Undo())
	testutil.AssertNoError(t, g.Play("d7d5"))
	testutil.AssertFalse(t, g.Redo())
	testutil.AssertEqual(t, g.MoveText(), []string{"e2e4", "d7d5"})
}

func TestRepetitions(t *testing.T) {
	g, err := New(variant.Chess())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Repetitions(), 1)

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	testutil.AssertNoError(t, g.PlayAll(shuffle))
	testutil.AssertEqual(t, g.Repetitions(), 2)
	testutil.AssertNoError(t, g.PlayAll(shuffle))
	testutil.AssertEqual(t, g.Repetitions(), 3)

	testutil.AssertTrue(t, g.Undo())
	testutil.AssertEqual(t, g.Repetitions(), 2)
	testutil.AssertEqual(t, g.MaxRepetitions(), 2)
	testutil.AssertTrue(t, g.Redo())
	testutil.AssertEqual(t, g.Repetitions(), 3)

	testutil.AssertNoError(t, g.Play("e2e4"))
	testutil.AssertEqual(t, g.Repetitions(), 1)
	testutil.AssertEqual(t, g.MaxRepetitions(), 3)
}

func TestRepetitionsAfterDoublePush(t *testing.T) {
	// No en passant capture is possible after 1...e5, so the position
	// recurs after each knight shuffle.
	g, err := New(variant.Chess())
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, g.PlayAll([]string{
		"e2e4", "e7e5",
		"g1f3", "b8c6", "f3g1", "c6b8",
		"g1f3", "b8c6", "f3g1", "c6b8",
	}))
	testutil.AssertEqual(t, g.Repetitions(), 3)
	testutil.AssertEqual(t, g.MaxRepetitions(), 3)
}

func TestSignature(t *testing.T) {
	a, err := New(variant.Chess())
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, a.PlayAll([]string{"g1f3", "g8f6", "b1c3"}))

	b, err := New(variant.Chess())
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, b.PlayAll([]string{"b1c3", "g8f6", "g1f3"}))

	testutil.AssertEqual(t, a.Signature(), b.Signature())
	testutil.AssertEqual(t, a.Signature().Variant, "chess")
	testutil.AssertEqual(t, a.Signature().MoveCount, 3)
}

func TestWritePGN(t *testing.T) {
	g, err := New(variant.Chess(), WithID("abc"), WithStartFEN("4k3/8/8/8/8/8/4P3/4K3 b - - 0 7"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, g.PlayAll([]string{"e8d7", "e2e4", "d7c6"}))
	testutil.AssertNoError(t, g.SetTag(pgn.TagWhite, "W"))

	var buf bytes.Buffer
	testutil.AssertNoError(t, g.WritePGN(pgn.NewWriter(&buf, 0)))

	want := `[Event "?"]
[Site "?"]
[Date "?"]
[Round "?"]
[White "W"]
[Black "?"]
[Result "*"]
[Variant "chess"]
[SetUp "1"]
[FEN "4k3/8/8/8/8/8/4P3/4K3 b - - 0 7"]
[GameId "abc"]

7... e8d7 8. e2e4 d7c6 *

`
	testutil.AssertEqual(t, buf.String(), want)
}
