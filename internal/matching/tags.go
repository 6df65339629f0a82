package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/errors"
	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/pgn"
)

// TagOperator represents comparison operators for tag matching.
type TagOperator int

const (
	OpEqual TagOperator = iota
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains // substring match
	OpRegex    // regex match
	OpSoundex  // soundex match for names
)

// operatorTokens lists the criterion operators, longest first.
var operatorTokens = []struct {
	token string
	op    TagOperator
}{
	{"<=", OpLessOrEqual},
	{">=", OpGreaterOrEqual},
	{"<>", OpNotEqual},
	{"!=", OpNotEqual},
	{"<", OpLessThan},
	{">", OpGreaterThan},
	{"=", OpEqual},
	{"~", OpRegex},
}

// PlayerTag names the pseudo tag that matches either player.
const PlayerTag = "_Player"

// TagCriterion represents a single tag matching criterion.
type TagCriterion struct {
	TagName  string
	Value    string
	Operator TagOperator

	regex   *regexp.Regexp
	soundex string
}

// TagMatcher selects games by their tags.
type TagMatcher struct {
	criteria   []*TagCriterion
	useSoundex bool
	matchAll   bool // true = AND all criteria, false = OR
}

// NewTagMatcher creates a new tag matcher requiring every criterion.
func NewTagMatcher() *TagMatcher {
	return &TagMatcher{matchAll: true}
}

// SetMatchAll sets whether all criteria must match (AND) or any (OR).
func (tm *TagMatcher) SetMatchAll(all bool) {
	tm.matchAll = all
}

// SetUseSoundex enables soundex matching for player names.
func (tm *TagMatcher) SetUseSoundex(use bool) {
	tm.useSoundex = use
}

// AddCriterion adds a tag matching criterion.
func (tm *TagMatcher) AddCriterion(tagName, value string, op TagOperator) error {
	c := &TagCriterion{TagName: tagName, Value: value, Operator: op}
	switch op {
	case OpRegex:
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("tag %s: %w: %w", tagName, errors.ErrInvalidTag, err)
		}
		c.regex = re
	case OpSoundex:
		c.soundex = Soundex(value)
	case OpContains:
		c.Value = strings.ToLower(value)
	}
	tm.criteria = append(tm.criteria, c)
	return nil
}

// AddPlayerCriterion adds a criterion that matches either White or Black.
func (tm *TagMatcher) AddPlayerCriterion(playerName string) {
	op := OpContains
	if tm.useSoundex {
		op = OpSoundex
	}
	// Neither operator can fail.
	_ = tm.AddCriterion(PlayerTag, playerName, op)
}

// ParseCriterion parses a criterion line such as `Date >= "2020.01.01"`.
// Blank lines and lines starting with # are ignored.
func (tm *TagMatcher) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	nameEnd := strings.IndexAny(line, " \t<>=!~")
	if nameEnd <= 0 {
		return fmt.Errorf("criterion %q: %w", line, errors.ErrInvalidTag)
	}
	name := line[:nameEnd]
	rest := strings.TrimSpace(line[nameEnd:])

	op := OpEqual
	for _, t := range operatorTokens {
		if strings.HasPrefix(rest, t.token) {
			op = t.op
			rest = strings.TrimSpace(rest[len(t.token):])
			break
		}
	}
	if unquoted, err := strconv.Unquote(rest); err == nil {
		rest = unquoted
	}
	return tm.AddCriterion(name, rest, op)
}

// CriteriaCount returns the number of criteria.
func (tm *TagMatcher) CriteriaCount() int {
	return len(tm.criteria)
}

// Match implements GameMatcher.
func (tm *TagMatcher) Match(g *game.Game) bool {
	return tm.MatchTags(g.Tags())
}

// Name implements GameMatcher.
func (tm *TagMatcher) Name() string {
	return fmt.Sprintf("TagMatcher(%d)", len(tm.criteria))
}

// MatchTags checks tags against the criteria. No criteria match everything.
func (tm *TagMatcher) MatchTags(tags pgn.Tags) bool {
	if len(tm.criteria) == 0 {
		return true
	}
	for _, c := range tm.criteria {
		if matchCriterion(tags, c) != tm.matchAll {
			return !tm.matchAll
		}
	}
	return tm.matchAll
}

// matchCriterion checks if tags satisfy a single criterion.
func matchCriterion(tags pgn.Tags, c *TagCriterion) bool {
	if c.TagName == PlayerTag {
		return matchValue(tags.Get(pgn.TagWhite), c) || matchValue(tags.Get(pgn.TagBlack), c)
	}
	if !tags.Has(c.TagName) {
		// only != matches missing tags
		return c.Operator == OpNotEqual
	}
	return matchValue(tags.Get(c.TagName), c)
}

// matchValue compares a tag value against a criterion.
func matchValue(value string, c *TagCriterion) bool {
	switch c.Operator {
	case OpEqual:
		return strings.EqualFold(value, c.Value)
	case OpNotEqual:
		return !strings.EqualFold(value, c.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(value), c.Value)
	case OpRegex:
		return c.regex.MatchString(value)
	case OpSoundex:
		return Soundex(value) == c.soundex
	}
	return compareOrdered(compareValues(value, c.Value), c.Operator)
}

// compareOrdered applies a relational operator to a three-way comparison.
func compareOrdered(cmp int, op TagOperator) bool {
	switch op {
	case OpLessThan:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreaterThan:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	}
	return false
}

// compareValues orders two tag values as dates (YYYY.MM.DD), then as
// numbers, then as case-folded strings.
func compareValues(a, b string) int {
	if da, db := parseDate(a), parseDate(b); da > 0 && db > 0 {
		return da - db
	}
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// parseDate encodes a YYYY.MM.DD date as YYYYMMDD. Unknown month and day
// parts ("??") count as the first. It returns 0 if there is no valid year.
func parseDate(s string) int {
	parts := strings.Split(s, ".")
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || year < 100 || year > 3000 {
		return 0
	}

	month, day := 1, 1
	if len(parts) >= 2 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	if len(parts) >= 3 {
		if d, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}
	return year*10000 + month*100 + day
}
