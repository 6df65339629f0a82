package matching

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/wildchess-go/internal/errors"
	"github.com/lgbarn/wildchess-go/internal/pgn"
)

var testTags = pgn.Tags{
	{Name: pgn.TagEvent, Value: "Candidates"},
	{Name: pgn.TagDate, Value: "1971.10.26"},
	{Name: pgn.TagWhite, Value: "Fischer, Robert"},
	{Name: pgn.TagBlack, Value: "Petrosian, Tigran"},
	{Name: pgn.TagResult, Value: "1-0"},
	{Name: "WhiteElo", Value: "2760"},
}

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{`Event "Candidates"`, true},
		{`Event "candidates"`, true},
		{`Event "Olympiad"`, false},
		{`Event = "Candidates"`, true},
		{`Event != "Olympiad"`, true},
		{`Event <> "Candidates"`, false},
		{`Date >= "1970.01.01"`, true},
		{`Date < "1971.10"`, false},
		{`Date <= "1971.10.26"`, true},
		{`WhiteElo > "2700"`, true},
		{`WhiteElo > "900"`, true},
		{`WhiteElo < "2750"`, false},
		{`Black ~ "^Petro"`, true},
		{`Black ~ "^Spassky"`, false},
		{`Annotator != "Kasparov"`, true},
		{`Annotator "Kasparov"`, false},
		{`White > "Carlsen"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tm := NewTagMatcher()
			if err := tm.ParseCriterion(tt.line); err != nil {
				t.Fatalf("ParseCriterion(%q) error = %v", tt.line, err)
			}
			if tm.CriteriaCount() != 1 {
				t.Fatalf("CriteriaCount() = %d", tm.CriteriaCount())
			}
			if got := tm.MatchTags(testTags); got != tt.want {
				t.Errorf("MatchTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCriterion_Skipped(t *testing.T) {
	tm := NewTagMatcher()
	for _, line := range []string{"", "   ", "# a comment"} {
		if err := tm.ParseCriterion(line); err != nil {
			t.Errorf("ParseCriterion(%q) error = %v", line, err)
		}
	}
	if tm.CriteriaCount() != 0 {
		t.Errorf("CriteriaCount() = %d, want 0", tm.CriteriaCount())
	}
}

func TestParseCriterion_Errors(t *testing.T) {
	for _, line := range []string{`"Candidates"`, `Black ~ "("`} {
		err := NewTagMatcher().ParseCriterion(line)
		if !stderrors.Is(err, errors.ErrInvalidTag) {
			t.Errorf("ParseCriterion(%q) error = %v, want ErrInvalidTag", line, err)
		}
	}
}

func TestTagMatcher_MatchMode(t *testing.T) {
	tm := NewTagMatcher()
	tm.ParseCriterion(`Event "Olympiad"`)
	tm.ParseCriterion(`Result "1-0"`)
	if tm.MatchTags(testTags) {
		t.Error("AND mode matched with one failing criterion")
	}
	tm.SetMatchAll(false)
	if !tm.MatchTags(testTags) {
		t.Error("OR mode did not match with one passing criterion")
	}
}

func TestTagMatcher_Player(t *testing.T) {
	tests := []struct {
		name    string
		soundex bool
		want    bool
	}{
		{"petrosian", false, true},
		{"FISCHER", false, true},
		{"spassky", false, false},
		{"Fisher, Robert", true, true},
		{"Petrosyan, Tigran", true, true},
		{"Spassky, Boris", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTagMatcher()
			tm.SetUseSoundex(tt.soundex)
			tm.AddPlayerCriterion(tt.name)
			if got := tm.MatchTags(testTags); got != tt.want {
				t.Errorf("MatchTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagMatcher_Contains(t *testing.T) {
	tm := NewTagMatcher()
	if err := tm.AddCriterion(pgn.TagEvent, "DIDA", OpContains); err != nil {
		t.Fatal(err)
	}
	if !tm.MatchTags(testTags) {
		t.Error("substring match failed")
	}
	if tm.MatchTags(pgn.Tags{}) {
		t.Error("missing tag matched a contains criterion")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1971.10.26", 19711026},
		{"1971.??.??", 19710101},
		{"1971", 19710101},
		{"????.??.??", 0},
		{"99.01.01", 0},
	}
	for _, tt := range tests {
		if got := parseDate(tt.in); got != tt.want {
			t.Errorf("parseDate(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSoundex(t *testing.T) {
	same := [][2]string{
		{"Nimzowitsch", "Nimsowitsch"},
		{"Petrosian", "Petrosyan"},
		{"Alekhine", "Aljechin"},
	}
	for _, pair := range same {
		if Soundex(pair[0]) != Soundex(pair[1]) {
			t.Errorf("Soundex(%q) = %q, Soundex(%q) = %q", pair[0], Soundex(pair[0]), pair[1], Soundex(pair[1]))
		}
	}
	if Soundex("Fischer") == Soundex("Karpov") {
		t.Error("Fischer and Karpov share a code")
	}
	if got := Soundex(""); got != "" {
		t.Errorf("Soundex(\"\") = %q", got)
	}
	if got := Soundex("Tal"); len(got) != soundexLength || !strings.HasPrefix(got, "T") {
		t.Errorf("Soundex(Tal) = %q", got)
	}
}
