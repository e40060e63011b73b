package cursor

import "fmt"

// Lines is the read-only view of a document that motions need.
type Lines interface {
	LineCount() int
	LineLen(row int) int
}

// Position is a cursor location. Column may equal the line length,
// denoting the insertion point just past the last rune.
type Position struct {
	Column int
	Row    int
}

// Origin is the position at the start of the document.
var Origin = Position{}

// At creates a position.
func At(column, row int) Position {
	return Position{Column: column, Row: row}
}

// String returns "(column,row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// Valid reports whether p addresses an existing row and a column within
// that row's bounds.
func (p Position) Valid(l Lines) bool {
	if p.Row < 0 || p.Row >= l.LineCount() {
		return false
	}
	return p.Column >= 0 && p.Column <= l.LineLen(p.Row)
}

// Left moves one rune left, wrapping to the end of the previous line.
func (p Position) Left(l Lines) Position {
	switch {
	case p.Column > 0:
		p.Column--
	case p.Row > 0:
		p.Row--
		p.Column = l.LineLen(p.Row)
	}
	return p
}

// Right moves one rune right, wrapping to the start of the next line.
func (p Position) Right(l Lines) Position {
	switch {
	case p.Column < l.LineLen(p.Row):
		p.Column++
	case p.Row+1 < l.LineCount():
		p.Row++
		p.Column = 0
	}
	return p
}

// Up moves to the previous line. The column only ever shrinks.
func (p Position) Up(l Lines) Position {
	if p.Row > 0 {
		p.Row--
		p.Column = min(p.Column, l.LineLen(p.Row))
	}
	return p
}

// Down moves to the next line. The column only ever shrinks.
func (p Position) Down(l Lines) Position {
	if p.Row+1 < l.LineCount() {
		p.Row++
		p.Column = min(p.Column, l.LineLen(p.Row))
	}
	return p
}
