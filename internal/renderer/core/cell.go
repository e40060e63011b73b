// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Replacement is drawn for control characters, which have no glyph.
const Replacement = '\uFFFD'

// Cell is a single character cell on screen.
type Cell struct {
	// Rune is the character drawn in the cell.
	Rune rune

	// Combining holds zero-width runes, such as accents, drawn over Rune.
	Combining []rune

	// Width is the display width of Rune: 0, 1 or 2 columns.
	Width int
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// NewCell creates a cell for r with its display width.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: RuneWidth(r)}
}

// RuneWidth returns the number of terminal columns r occupies.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// Layout splits s into the cells that fit in width columns.
// Zero-width runes ride on the preceding cell as combining runes; one at
// the start of s is drawn over a space. Control characters are shown as
// Replacement.
func Layout(s string, width int) []Cell {
	var cells []Cell
	used := 0
	for _, r := range s {
		if unicode.IsControl(r) {
			r = Replacement
		}

		w := RuneWidth(r)
		if w == 0 {
			if len(cells) == 0 {
				if width < 1 {
					break
				}
				cells = append(cells, EmptyCell())
				used++
			}
			last := &cells[len(cells)-1]
			last.Combining = append(last.Combining, r)
			continue
		}

		if used+w > width {
			break
		}
		cells = append(cells, Cell{Rune: r, Width: w})
		used += w
	}
	return cells
}

// StringFromCells reconstructs the text shown by a row of cells,
// with trailing blanks removed.
func StringFromCells(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
		for _, r := range c.Combining {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
