// Package buffer provides the document model for the editor: an ordered,
// index-addressable sequence of lines, each stored as a mutable slice of
// runes.
//
// A Buffer always holds at least one line. Operations address lines purely
// by their current index and columns in rune units, never bytes or display
// cells.
//
// Basic usage:
//
//	buf := buffer.NewBuffer()          // [""]
//	buf.InsertRune(0, 0, 'h')          // ["h"]
//	buf.InsertRune(0, 1, 'i')          // ["hi"]
//	buf.SplitLine(0, 1)                // ["h", "i"]
//	buf.JoinWithPrevious(1)            // ["hi"], returns 1
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. It is owned by a single control
// loop.
package buffer
