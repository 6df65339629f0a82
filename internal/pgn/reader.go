package pgn

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// Game results.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultUnknown   = "*"
)

func isResult(token string) bool {
	switch token {
	case ResultWhiteWins, ResultBlackWins, ResultDraw, ResultUnknown:
		return true
	}
	return false
}

// moveNumberRegex matches a move number prefix like "12." or "12...".
var moveNumberRegex = regexp.MustCompile(`^\d+\.+`)

// Record is one game as read: its tags, move tokens and result.
type Record struct {
	Tags   Tags
	Moves  []string
	Result string
	Line   int // Line the record starts on
}

// Reader reads Records from PGN text.
type Reader struct {
	scanner *bufio.Scanner
	name    string
	lineNum int
	peeked  *string
}

// NewReader creates a reader. name labels parse errors and may be empty.
func NewReader(r io.Reader, name string) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), name: name}
}

func (r *Reader) readLine() (string, bool) {
	if r.peeked != nil {
		line := *r.peeked
		r.peeked = nil
		return line, true
	}
	if !r.scanner.Scan() {
		return "", false
	}
	r.lineNum++
	return r.scanner.Text(), true
}

func (r *Reader) unread(line string) {
	r.peeked = &line
}

// Next returns the next record, or io.EOF when the input is exhausted.
func (r *Reader) Next() (*Record, error) {
	var line string
	var ok bool
	for {
		line, ok = r.readLine()
		if !ok {
			if err := r.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		if strings.TrimSpace(line) != "" {
			break
		}
	}

	rec := &Record{Line: r.lineNum, Result: ResultUnknown}
	r.unread(line)

	// Tag section.
	for {
		line, ok = r.readLine()
		if !ok {
			return rec, r.scanner.Err()
		}
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "[") {
			r.unread(line)
			break
		}
		tag, err := r.parseTag(line)
		if err != nil {
			return nil, err
		}
		if err := rec.Tags.Set(tag.Name, tag.Value); err != nil {
			return nil, err
		}
	}

	// Move text runs to a blank line, the next tag section or the end.
	// Inside a brace comment neither ends it.
	inComment := false
	for {
		line, ok = r.readLine()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if !inComment {
			if trimmed == "" {
				if len(rec.Moves) > 0 || rec.Result != ResultUnknown {
					break
				}
				continue
			}
			if strings.HasPrefix(trimmed, "[") {
				r.unread(line)
				break
			}
		}
		inComment = addMoveText(rec, trimmed, inComment)
	}
	if rec.Result == ResultUnknown {
		if result := rec.Tags.Get(TagResult); isResult(result) {
			rec.Result = result
		}
	}
	return rec, r.scanner.Err()
}

// addMoveText adds the move tokens of one line. inComment tells whether
// the line starts inside a brace comment; the result tells whether it ends
// inside one.
func addMoveText(rec *Record, text string, inComment bool) bool {
	var sb strings.Builder
	for _, c := range text {
		switch {
		case inComment:
			if c == '}' {
				inComment = false
				sb.WriteByte(' ')
			}
		case c == '{':
			inComment = true
			sb.WriteByte(' ')
		default:
			sb.WriteRune(c)
		}
	}
	for _, token := range strings.Fields(sb.String()) {
		token = moveNumberRegex.ReplaceAllString(token, "")
		if token == "" {
			continue
		}
		if isResult(token) {
			rec.Result = token
			continue
		}
		rec.Moves = append(rec.Moves, token)
	}
	return inComment
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

func (r *Reader) parseTag(line string) (Tag, error) {
	tag, err := ParseTag(line)
	if pe, ok := err.(*errors.ParseError); ok {
		pe.File = r.name
		pe.Line = r.lineNum
		return Tag{}, pe
	}
	return tag, err
}

// ParseTag parses one `[Name "Value"]` line. Failures are *errors.ParseError
// values carrying the column where parsing stopped.
func ParseTag(line string) (Tag, error) {
	pos := 0
	skipSpace := func() {
		for pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
			pos++
		}
	}
	fail := func(expected, got string) (Tag, error) {
		return Tag{}, &errors.ParseError{
			Err:      errors.ErrInvalidTag,
			Column:   pos + 1,
			Expected: expected,
			Got:      got,
		}
	}
	found := func() string {
		if pos >= len(line) {
			return "end of line"
		}
		return "'" + string(line[pos]) + "'"
	}

	skipSpace()
	if pos >= len(line) || line[pos] != '[' {
		return fail("'['", found())
	}
	pos++
	skipSpace()

	start := pos
	for pos < len(line) && line[pos] != ' ' && line[pos] != '\t' && line[pos] != '"' && line[pos] != ']' {
		pos++
	}
	name := line[start:pos]
	if !validTagName(name) {
		pos = start
		return fail("tag name", found())
	}

	skipSpace()
	if pos >= len(line) || line[pos] != '"' {
		return fail("'\"'", found())
	}
	pos++

	var sb strings.Builder
	closed := false
	for pos < len(line) {
		ch := line[pos]
		pos++
		if ch == '\\' && pos < len(line) {
			sb.WriteByte(line[pos])
			pos++
			continue
		}
		if ch == '"' {
			closed = true
			break
		}
		sb.WriteByte(ch)
	}
	if !closed {
		return fail("closing quote", "end of line")
	}

	skipSpace()
	if pos >= len(line) || line[pos] != ']' {
		return fail("']'", found())
	}
	return Tag{Name: name, Value: sb.String()}, nil
}
