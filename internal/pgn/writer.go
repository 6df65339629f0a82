package pgn

import (
	"fmt"
	"io"
)

// DefaultLineLength is the move text wrap column.
const DefaultLineLength = 80

// lineWriter handles formatted output with line length control.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &lineWriter{w: w, maxLineLength: maxLineLength}
}

func (o *lineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// write writes a token, adding a space separator or a line break as needed.
func (o *lineWriter) write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

func (o *lineWriter) newLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Writer writes game records.
type Writer struct {
	w          io.Writer
	lineLength int
}

// NewWriter creates a writer wrapping move text at lineLength columns.
// A non-positive lineLength selects DefaultLineLength.
func NewWriter(w io.Writer, lineLength int) *Writer {
	return &Writer{w: w, lineLength: lineLength}
}

// Write writes rec: the tag section in roster order, a blank line, the
// numbered move text ending in the result, and a blank line. firstMove is
// the full move number of the first move and blackFirst whether Black
// makes it.
func (wr *Writer) Write(rec *Record, firstMove uint, blackFirst bool) error {
	tags := append(Tags(nil), rec.Tags...)
	if rec.Result != "" && !tags.Has(TagResult) {
		tags = append(tags, Tag{Name: TagResult, Value: rec.Result})
	}
	for _, tag := range tags.Ordered() {
		if _, err := fmt.Fprintln(wr.w, tag.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(wr.w); err != nil {
		return err
	}

	ow := newLineWriter(wr.w, wr.lineLength)
	number := firstMove
	black := blackFirst
	for i, move := range rec.Moves {
		switch {
		case !black:
			ow.write(fmt.Sprintf("%d.", number))
		case i == 0:
			ow.write(fmt.Sprintf("%d...", number))
		}
		ow.write(move)
		if black {
			number++
		}
		black = !black
	}
	result := rec.Result
	if result == "" {
		result = ResultUnknown
	}
	ow.write(result)
	ow.newLine()
	ow.newLine()
	return ow.err
}
