// Package pgn reads and writes the PGN subset wildchess records games in:
// a tag section followed by move text in coordinate, castling or hidden
// move notation.
package pgn

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// Tag names the game record uses.
const (
	TagEvent   = "Event"
	TagSite    = "Site"
	TagDate    = "Date"
	TagRound   = "Round"
	TagWhite   = "White"
	TagBlack   = "Black"
	TagResult  = "Result"
	TagVariant = "Variant"
	TagSetUp   = "SetUp"
	TagFEN     = "FEN"
	TagGameID  = "GameId"
)

// SevenTagRoster is the standard set of required PGN tags, in output order.
var SevenTagRoster = []string{TagEvent, TagSite, TagDate, TagRound, TagWhite, TagBlack, TagResult}

// IsSevenTagRosterTag reports whether name belongs to the seven tag roster.
func IsSevenTagRosterTag(name string) bool {
	for _, tag := range SevenTagRoster {
		if tag == name {
			return true
		}
	}
	return false
}

// Tag is one [Name "Value"] pair.
type Tag struct {
	Name  string
	Value string
}

// NewTag validates name and returns the tag. Names are letters, digits and
// underscores.
func NewTag(name, value string) (Tag, error) {
	if !validTagName(name) {
		return Tag{}, fmt.Errorf("tag name %q: %w", name, errors.ErrInvalidTag)
	}
	return Tag{Name: name, Value: value}, nil
}

func validTagName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// String returns the tag in PGN form.
func (t Tag) String() string {
	return fmt.Sprintf("[%s \"%s\"]", t.Name, escapeTagValue(t.Value))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// Tags is an ordered tag section. Names are unique.
type Tags []Tag

// Get returns the value of name, or "" when absent.
func (ts Tags) Get(name string) string {
	for _, t := range ts {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

// Has reports whether name is present.
func (ts Tags) Has(name string) bool {
	for _, t := range ts {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Set replaces the value of name, or appends the tag when absent.
func (ts *Tags) Set(name, value string) error {
	tag, err := NewTag(name, value)
	if err != nil {
		return err
	}
	for i := range *ts {
		if (*ts)[i].Name == name {
			(*ts)[i].Value = value
			return nil
		}
	}
	*ts = append(*ts, tag)
	return nil
}

// Delete removes name if present.
func (ts *Tags) Delete(name string) {
	out := (*ts)[:0]
	for _, t := range *ts {
		if t.Name != name {
			out = append(out, t)
		}
	}
	*ts = out
}

// Ordered returns the seven tag roster first, "?" filling missing values
// ("*" for Result), then the remaining tags in insertion order.
func (ts Tags) Ordered() Tags {
	out := make(Tags, 0, len(ts)+len(SevenTagRoster))
	for _, name := range SevenTagRoster {
		value := ts.Get(name)
		if value == "" {
			value = "?"
			if name == TagResult {
				value = "*"
			}
		}
		out = append(out, Tag{Name: name, Value: value})
	}
	for _, t := range ts {
		if !IsSevenTagRosterTag(t.Name) {
			out = append(out, t)
		}
	}
	return out
}

// SetupTags returns the tags recording a game's rules and start. SetUp and
// FEN are only present when the start differs from the standard array.
func SetupTags(variant, startFEN string, standardStart bool) Tags {
	tags := Tags{{Name: TagVariant, Value: variant}}
	if !standardStart {
		tags = append(tags, Tag{Name: TagSetUp, Value: "1"}, Tag{Name: TagFEN, Value: startFEN})
	}
	return tags
}
