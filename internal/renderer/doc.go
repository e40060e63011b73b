// Package renderer projects the editor state onto a terminal viewport.
//
// A render pass queries the backend size, clears the screen and draws one
// document line per screen row starting at line 0. Rows past the end of the
// document, and rows whose line is empty, show a "~" placeholder. Lines wider
// than the screen are clipped by display width.
//
// The cursor is shown as a steady block at the logical cursor position,
// clamped to the last visible column and row. The clamp is display-only: the
// editor's cursor is never modified. There is no scrolling.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultOptions())
//	r.Render(state)
package renderer
