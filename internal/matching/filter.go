package matching

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/pgn"
)

// GameFilter combines tag, position, material and length criteria. A game
// must satisfy every kind of criterion that has been set.
type GameFilter struct {
	Tags      *TagMatcher
	Positions *PositionMatcher
	extra     *CompositeMatcher
}

// NewGameFilter creates a filter without criteria, which matches every game.
func NewGameFilter() *GameFilter {
	return &GameFilter{
		Tags:      NewTagMatcher(),
		Positions: NewPositionMatcher(),
		extra:     NewCompositeMatcher(MatchAll),
	}
}

// LoadTagFile loads criteria from a file with one criterion per line:
//
//	White "Fischer"
//	Date >= "1970.01.01"
//	FEN "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
func (gf *GameFilter) LoadTagFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()
	return gf.LoadCriteria(file, filename)
}

// LoadCriteria reads criteria lines from r. FEN lines become position
// criteria, everything else tag criteria.
func (gf *GameFilter) LoadCriteria(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		var err error
		if rest, ok := strings.CutPrefix(line, pgn.TagFEN+" "); ok {
			err = gf.AddFENFilter(strings.Trim(strings.TrimSpace(rest), `"`))
		} else {
			err = gf.Tags.ParseCriterion(line)
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNum, err)
		}
	}
	return scanner.Err()
}

// AddTagCriterion adds a tag criterion.
func (gf *GameFilter) AddTagCriterion(tagName, value string, op TagOperator) error {
	return gf.Tags.AddCriterion(tagName, value, op)
}

// AddPlayerFilter matches a name against either player.
func (gf *GameFilter) AddPlayerFilter(name string) {
	gf.Tags.AddPlayerCriterion(name)
}

// AddResultFilter matches the Result tag.
func (gf *GameFilter) AddResultFilter(result string) {
	// OpEqual cannot fail.
	_ = gf.Tags.AddCriterion(pgn.TagResult, result, OpEqual)
}

// AddFENFilter matches games passing through the placement of fen.
func (gf *GameFilter) AddFENFilter(fen string) error {
	return gf.Positions.AddFEN(fen, fen)
}

// AddMatcher adds another required matcher.
func (gf *GameFilter) AddMatcher(m GameMatcher) {
	gf.extra.Add(m)
}

// SetUseSoundex enables soundex matching for player names added later.
func (gf *GameFilter) SetUseSoundex(use bool) {
	gf.Tags.SetUseSoundex(use)
}

// HasCriteria reports whether any criterion has been added.
func (gf *GameFilter) HasCriteria() bool {
	return gf.Tags.CriteriaCount() > 0 || gf.Positions.PatternCount() > 0 || gf.extra.Len() > 0
}

// Match implements GameMatcher.
func (gf *GameFilter) Match(g *game.Game) bool {
	if !gf.Tags.Match(g) {
		return false
	}
	if gf.Positions.PatternCount() > 0 && !gf.Positions.Match(g) {
		return false
	}
	return gf.extra.Match(g)
}

// Name implements GameMatcher.
func (gf *GameFilter) Name() string {
	return "GameFilter"
}
