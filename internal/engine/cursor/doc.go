// Package cursor provides the logical cursor of the editor and the motions
// that move it over a document.
//
// A Position is a (Column, Row) pair in rune units. It is a value type;
// every motion returns a new Position.
//
// Motion rules:
//
//   - Left at the start of a line wraps to the end of the previous line.
//   - Right at the end of a line wraps to the start of the next line.
//   - Up and Down keep the column, clamped to the target line's length.
//   - A motion with nowhere to go returns the position unchanged.
//
// Motions read the document through the Lines interface, which
// *buffer.Buffer satisfies.
package cursor
