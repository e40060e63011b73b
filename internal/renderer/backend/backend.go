// Package backend provides the terminal collaborator for the renderer: the
// thin layer that owns raw mode, the alternate screen, cell output and input
// decoding.
package backend

import (
	"errors"
	"time"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/renderer/core"
)

// ErrClosed is returned by PollEvent once the backend can no longer
// deliver input.
var ErrClosed = errors.New("backend closed")

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// MouseX and MouseY are set for EventMouse.
	MouseX, MouseY int

	// Width and Height are set for EventResize.
	Width, Height int
}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init enters raw mode and the alternate screen and hides the cursor.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// Safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions in cells.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear clears the entire screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent waits up to timeout for the next event. It returns an
	// event of type EventNone if the timeout elapses first.
	PollEvent(timeout time.Duration) (Event, error)
}
