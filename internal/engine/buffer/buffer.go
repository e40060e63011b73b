package buffer

import (
	"errors"
	"strings"
)

// Errors returned by buffer operations.
var (
	ErrRowOutOfRange    = errors.New("row out of range")
	ErrColumnOutOfRange = errors.New("column out of range")
)

// Buffer holds the lines of a document.
type Buffer struct {
	lines [][]rune
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewBufferFromLines creates a buffer with the given lines.
// An empty argument list yields a single empty line.
func NewBufferFromLines(lines ...string) *Buffer {
	if len(lines) == 0 {
		return NewBuffer()
	}
	b := &Buffer{lines: make([][]rune, len(lines))}
	for i, l := range lines {
		b.lines[i] = []rune(l)
	}
	return b
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the length of a line in runes.
// Returns 0 if row is out of range.
func (b *Buffer) LineLen(row int) int {
	if !b.validRow(row) {
		return 0
	}
	return len(b.lines[row])
}

// Line returns the text of a line.
// Returns an empty string if row is out of range.
func (b *Buffer) Line(row int) string {
	if !b.validRow(row) {
		return ""
	}
	return string(b.lines[row])
}

// Lines returns a copy of every line as a string.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Text returns the document joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// InsertRune inserts r into line row before column col.
// col may equal the line length to append.
func (b *Buffer) InsertRune(row, col int, r rune) error {
	if !b.validRow(row) {
		return ErrRowOutOfRange
	}
	line := b.lines[row]
	if col < 0 || col > len(line) {
		return ErrColumnOutOfRange
	}

	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	b.lines[row] = line
	return nil
}

// DeleteRune removes the rune at column col of line row.
func (b *Buffer) DeleteRune(row, col int) error {
	if !b.validRow(row) {
		return ErrRowOutOfRange
	}
	line := b.lines[row]
	if col < 0 || col >= len(line) {
		return ErrColumnOutOfRange
	}

	b.lines[row] = append(line[:col], line[col+1:]...)
	return nil
}

// SplitLine splits line row at column col. The prefix stays at row and the
// suffix becomes a new line at row+1.
func (b *Buffer) SplitLine(row, col int) error {
	if !b.validRow(row) {
		return ErrRowOutOfRange
	}
	line := b.lines[row]
	if col < 0 || col > len(line) {
		return ErrColumnOutOfRange
	}

	suffix := make([]rune, len(line)-col)
	copy(suffix, line[col:])
	b.lines[row] = line[:col]

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = suffix
	return nil
}

// JoinWithPrevious appends line row to the end of line row-1 and removes
// line row. It returns the original length of line row-1, which is where
// the joined text begins.
func (b *Buffer) JoinWithPrevious(row int) (int, error) {
	if row <= 0 || row >= len(b.lines) {
		return 0, ErrRowOutOfRange
	}

	prevLen := len(b.lines[row-1])
	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return prevLen, nil
}

func (b *Buffer) validRow(row int) bool {
	return row >= 0 && row < len(b.lines)
}
