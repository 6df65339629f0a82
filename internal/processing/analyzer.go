// Package processing analyses replayed games for rule events and checks
// game records for well-formed tags.
package processing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/hashing"
	"github.com/lgbarn/wildchess-go/internal/pgn"
)

// Half-move clock values at which the draw rules apply.
const (
	FiftyMoveClock       = 100
	SeventyFiveMoveClock = 150
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalPosition     *chess.Position
	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool
	Positions         []uint64 // Zobrist hashes, start position first

	// Extended draw rule detection
	Has75MoveRule           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool
	HasMaterialOdds         bool
}

// AnalyzeGame replays g from its start position and records the rule events
// met along the way.
func AnalyzeGame(g *game.Game) (*GameAnalysis, error) {
	pos := chess.NewPosition(g.Variant())
	if err := engine.ParseFEN(pos, g.StartFEN()); err != nil {
		return nil, err
	}
	analysis := &GameAnalysis{
		HasMaterialOdds: HasMaterialOdds(pos),
	}

	posHash := hashing.GenerateZobristHash(pos.State())
	analysis.Positions = append(analysis.Positions, posHash)
	positionCount := map[uint64]int{posHash: 1}

	for ply, m := range g.Moves() {
		if err := pos.MakeMove(m); err != nil {
			return nil, fmt.Errorf("ply %d: %w", ply+1, err)
		}

		clock := pos.HalfmoveClock()
		analysis.HasFiftyMoveRule = analysis.HasFiftyMoveRule || clock >= FiftyMoveClock
		analysis.Has75MoveRule = analysis.Has75MoveRule || clock >= SeventyFiveMoveClock

		if sm, ok := m.(*chess.StandardMove); ok && sm.IsPromotion() && sm.Promotion() != chess.Queen {
			analysis.HasUnderpromotion = true
		}

		posHash = hashing.GenerateZobristHash(pos.State())
		analysis.Positions = append(analysis.Positions, posHash)
		positionCount[posHash]++
		analysis.HasRepetition = analysis.HasRepetition || positionCount[posHash] >= 3
		analysis.Has5FoldRepetition = analysis.Has5FoldRepetition || positionCount[posHash] >= 5
	}

	analysis.HasInsufficientMaterial = HasInsufficientMaterial(pos)
	analysis.FinalPosition = pos
	return analysis, nil
}

// materialCount counts each player's pieces by kind.
func materialCount(pos *chess.Position) [2][chess.NumPieceKinds]int {
	var counts [2][chess.NumPieceKinds]int
	st := pos.State()
	for _, piece := range st.Squares {
		if piece != chess.NoPiece {
			counts[piece.Player()][piece.Kind()]++
		}
	}
	return counts
}

// HasInsufficientMaterial reports whether neither side can mate by the
// standard rules: no pawns, rooks or queens and at most one minor piece.
func HasInsufficientMaterial(pos *chess.Position) bool {
	minors := 0
	for _, side := range materialCount(pos) {
		if side[chess.Pawn]+side[chess.Rook]+side[chess.Queen] > 0 {
			return false
		}
		minors += side[chess.Knight] + side[chess.Bishop]
	}
	return minors <= 1
}

// HasMaterialOdds reports whether the two sides have different material,
// as in games started at odds.
func HasMaterialOdds(pos *chess.Position) bool {
	counts := materialCount(pos)
	return counts[chess.White] != counts[chess.Black]
}

// ValidationResult holds the result of record validation.
type ValidationResult struct {
	Valid       bool
	ParseErrors []string
}

// ValidateTags checks a record's tags: the seven tag roster must be present
// and the result, when given, must be a PGN result.
func ValidateTags(rec *pgn.Record) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for _, tag := range pgn.SevenTagRoster {
		if rec.Tags.Get(tag) == "" {
			result.ParseErrors = append(result.ParseErrors, fmt.Sprintf("missing required tag: %s", tag))
		}
	}

	if resultTag := rec.Tags.Get(pgn.TagResult); resultTag != "" && !isValidResult(resultTag) {
		result.Valid = false
		result.ParseErrors = append(result.ParseErrors, fmt.Sprintf("invalid result: %s", resultTag))
	}
	if rec.Result != "" && !isValidResult(rec.Result) {
		result.Valid = false
		result.ParseErrors = append(result.ParseErrors, fmt.Sprintf("invalid result: %s", rec.Result))
	}
	return result
}

// String joins the problems found.
func (v *ValidationResult) String() string {
	return strings.Join(v.ParseErrors, "; ")
}

// isValidResult checks if a result string is a valid PGN result.
func isValidResult(result string) bool {
	switch result {
	case pgn.ResultWhiteWins, pgn.ResultBlackWins, pgn.ResultDraw, pgn.ResultUnknown:
		return true
	default:
		return false
	}
}
