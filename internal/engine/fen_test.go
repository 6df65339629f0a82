package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/wildchess-go/internal/chess"
	chesserrors "github.com/lgbarn/wildchess-go/internal/errors"
)

// placementRules satisfies chess.Rules for notation tests that never move.
type placementRules struct{}

func (placementRules) Name() string { return "placement" }

func (placementRules) MakeMove(chess.Move, *chess.Position, *chess.Modifier) error {
	return chesserrors.ErrUnsupported
}

func newPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos := chess.NewPosition(&placementRules{})
	if err := ParseFEN(pos, fen); err != nil {
		t.Fatalf("ParseFEN(%q) error = %v", fen, err)
	}
	return pos
}

func sq(s string) chess.Square { return chess.MustSquare(s) }

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return p.PieceAt(sq("e1")) == chess.W(chess.King) &&
					p.PieceAt(sq("e8")) == chess.B(chess.King) &&
					p.PieceAt(sq("e2")) == chess.W(chess.Pawn) &&
					p.PieceAt(sq("e7")) == chess.B(chess.Pawn) &&
					p.CurrentPlayer() == chess.White &&
					p.Castling() == chess.StandardCastling()
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.PieceAt(sq("e4")) == chess.W(chess.Pawn) &&
					p.PieceAt(sq("e2")) == chess.NoPiece &&
					p.CurrentPlayer() == chess.Black &&
					p.EnPassantFile() == 4
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *chess.Position) bool {
				return !p.Castling().Any()
			},
		},
		{
			name: "shredder letters",
			fen:  "1r2k1r1/8/8/8/8/8/8/1R2K1R1 w GBgb - 0 1",
			checkFn: func(p *chess.Position) bool {
				c := p.Castling()
				return c.RookFile(chess.White, chess.KingWing) == 6 &&
					c.RookFile(chess.White, chess.QueenWing) == 1 &&
					c.RookFile(chess.Black, chess.KingWing) == 6 &&
					c.RookFile(chess.Black, chess.QueenWing) == 1
			},
		},
		{
			name: "X-FEN letters resolve to outer rooks",
			fen:  "1r2k1r1/8/8/8/8/8/8/1R2K1R1 w KQkq - 0 1",
			checkFn: func(p *chess.Position) bool {
				c := p.Castling()
				return c.RookFile(chess.White, chess.KingWing) == 6 &&
					c.RookFile(chess.White, chess.QueenWing) == 1
			},
		},
		{
			name: "clocks",
			fen:  "8/8/8/8/8/8/8/4K2k b - - 17 42",
			checkFn: func(p *chess.Position) bool {
				return p.HalfmoveClock() == 17 && p.MoveNumber() == 42
			},
		},
		{name: "empty string", fen: "", wantErr: true},
		{name: "too few ranks", fen: "8/8/8 w - - 0 1", wantErr: true},
		{name: "overfull rank", fen: "9/8/8/8/8/8/8/8 w - - 0 1", wantErr: true},
		{name: "bad piece", fen: "8/8/8/8/8/8/8/7X w - - 0 1", wantErr: true},
		{name: "bad side", fen: "8/8/8/8/8/8/8/8 x - - 0 1", wantErr: true},
		{name: "bad castling", fen: "8/8/8/8/8/8/8/8 w 1 - 0 1", wantErr: true},
		{name: "bad en passant", fen: "8/8/8/8/8/8/8/8 w - e4 0 1", wantErr: true},
		{name: "bad clock", fen: "8/8/8/8/8/8/8/8 w - - x 1", wantErr: true},
		{name: "zero move number", fen: "8/8/8/8/8/8/8/8 w - - 0 0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := chess.NewPosition(&placementRules{})
			err := ParseFEN(pos, tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFEN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidFEN) {
					t.Errorf("ParseFEN() error = %v; want ErrInvalidFEN", err)
				}
				return
			}
			if tt.checkFn != nil && !tt.checkFn(pos) {
				t.Errorf("ParseFEN() position check failed:\n%s", pos)
			}
		})
	}
}

func TestParseFENLeavesPositionOnError(t *testing.T) {
	pos := newPosition(t, InitialFEN)
	before := pos.State()
	if err := ParseFEN(pos, "8/8/8/8/8/8/8/7X w - - 0 1"); err == nil {
		t.Fatal("ParseFEN() accepted a bad piece")
	}
	if diff := cmp.Diff(before, pos.State()); diff != "" {
		t.Errorf("failed parse changed the position (-want +got):\n%s", diff)
	}
}

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"bbrnkqrn/pppppppp/8/8/8/8/PPPPPPPP/BBRNKQRN w GCgc - 0 1",
		"rk4rq/pppppppp/8/8/8/8/PPPPPPPP/RK4RQ b GAga - 5 9",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos := newPosition(t, fen)
			if got := FEN(pos); got != fen {
				t.Errorf("FEN() = %q; want %q", got, fen)
			}
			again := newPosition(t, FEN(pos))
			if diff := cmp.Diff(pos.State(), again.State()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShredderFEN(t *testing.T) {
	pos := newPosition(t, InitialFEN)
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w HAha - 0 1"
	if got := ShredderFEN(pos); got != want {
		t.Errorf("ShredderFEN() = %q; want %q", got, want)
	}
	again := newPosition(t, want)
	if diff := cmp.Diff(pos.State(), again.State()); diff != "" {
		t.Errorf("Shredder round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestIsChess960Position(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{InitialFEN, false},
		{"8/8/8/8/8/8/8/4K3 w - - 0 1", false},
		{"bbrnkqrn/pppppppp/8/8/8/8/PPPPPPPP/BBRNKQRN w GCgc - 0 1", true},
		{"rnbkqbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKQBNR w KQkq - 0 1", true},
	}
	for _, tt := range tests {
		if got := IsChess960Position(newPosition(t, tt.fen)); got != tt.want {
			t.Errorf("IsChess960Position(%q) = %v; want %v", tt.fen, got, tt.want)
		}
	}
}

func TestPlacement(t *testing.T) {
	pos := newPosition(t, InitialFEN)
	if got := Placement(pos); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR" {
		t.Errorf("Placement() = %q", got)
	}
}
