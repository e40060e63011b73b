package editor

import (
	"github.com/dshills/modal/internal/engine/buffer"
	"github.com/dshills/modal/internal/engine/cursor"
	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
)

// Result tells the control loop what to do after a dispatch.
type Result uint8

const (
	// Continue keeps the loop running.
	Continue Result = iota

	// Terminate asks the loop to release the terminal and exit.
	Terminate
)

// String returns the result name.
func (r Result) String() string {
	if r == Terminate {
		return "terminate"
	}
	return "continue"
}

// State is the document, cursor and mode of a single editor session.
// It is owned by one goroutine and is not safe for concurrent use.
type State struct {
	buf  *buffer.Buffer
	cur  cursor.Position
	mode mode.Mode
}

// New creates the startup state: one empty line, cursor at (0,0),
// Navigation mode.
func New() *State {
	return &State{
		buf:  buffer.NewBuffer(),
		cur:  cursor.Origin,
		mode: mode.Initial,
	}
}

// NewFromLines creates a state over the given lines with the cursor at the
// origin in Navigation mode.
func NewFromLines(lines ...string) *State {
	s := New()
	s.buf = buffer.NewBufferFromLines(lines...)
	return s
}

// Mode returns the current mode.
func (s *State) Mode() mode.Mode {
	return s.mode
}

// Cursor returns the logical cursor position.
func (s *State) Cursor() cursor.Position {
	return s.cur
}

// LineCount returns the number of document lines.
func (s *State) LineCount() int {
	return s.buf.LineCount()
}

// Line returns line row, or "" if it does not exist.
func (s *State) Line(row int) string {
	return s.buf.Line(row)
}

// Lines returns a copy of the document lines.
func (s *State) Lines() []string {
	return s.buf.Lines()
}

// Text returns the document joined with newlines.
func (s *State) Text() string {
	return s.buf.Text()
}

// HandleKey decodes ev in the current mode and dispatches the result.
func (s *State) HandleKey(ev key.Event) Result {
	return s.Dispatch(Decode(s.mode, ev))
}
