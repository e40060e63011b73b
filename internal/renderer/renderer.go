package renderer

import (
	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/renderer/backend"
	"github.com/dshills/modal/internal/renderer/core"
)

// View provides read access to the editor state being drawn.
type View interface {
	// LineCount returns the number of document lines. Always at least one.
	LineCount() int

	// Line returns the text of the given line, or "" when out of range.
	Line(row int) string

	// Cursor returns the logical cursor.
	Cursor() cursor.Position
}

// Options configures the renderer.
type Options struct {
	// Placeholder is drawn in place of missing or empty lines.
	Placeholder rune

	// CursorStyle is the terminal cursor shape.
	CursorStyle backend.CursorStyle
}

// DefaultOptions returns the editor's default options.
func DefaultOptions() Options {
	return Options{
		Placeholder: '~',
		CursorStyle: backend.CursorBlock,
	}
}

// Renderer draws a View onto a backend.
// It keeps no copy of the document; every pass redraws the whole screen.
type Renderer struct {
	opts    Options
	backend backend.Backend
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.Placeholder == 0 {
		opts.Placeholder = DefaultOptions().Placeholder
	}
	return &Renderer{
		opts:    opts,
		backend: b,
	}
}

// Render performs one full pass: clear, draw rows, place the cursor, flush.
func (r *Renderer) Render(v View) {
	width, height := r.backend.Size()
	r.backend.Clear()

	for y := 0; y < height; y++ {
		r.drawRow(y, rowText(v, y, r.opts.Placeholder), width)
	}

	if x, y, ok := CursorCell(v.Cursor(), width, height); ok {
		r.backend.SetCursorStyle(r.opts.CursorStyle)
		r.backend.ShowCursor(x, y)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
}

func (r *Renderer) drawRow(y int, text string, width int) {
	x := 0
	for _, cell := range core.Layout(text, width) {
		r.backend.SetCell(x, y, cell)
		x += cell.Width
	}
}

// rowText returns what screen row y shows: the document line, or the
// placeholder when the line is missing or empty.
func rowText(v View, y int, placeholder rune) string {
	if y < v.LineCount() {
		if line := v.Line(y); line != "" {
			return line
		}
	}
	return string(placeholder)
}

// CursorCell maps a logical cursor to the screen cell it is shown in.
// The position is clamped to the last column and row; the logical cursor is
// left alone. ok is false when the screen has no cells.
func CursorCell(pos cursor.Position, width, height int) (x, y int, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return min(pos.Column, width-1), min(pos.Row, height-1), true
}
