package editor

import "github.com/dshills/modal/internal/input/mode"

// Dispatch applies a to the state. Actions that do not apply in the
// current mode are no-ops.
func (s *State) Dispatch(a Action) Result {
	switch s.mode {
	case mode.Navigation:
		return s.dispatchNavigation(a)
	case mode.Insertion:
		return s.dispatchInsertion(a)
	}
	return Continue
}

func (s *State) dispatchNavigation(a Action) Result {
	if a.Kind.IsMotion() {
		s.move(a.Kind)
		return Continue
	}

	switch a.Kind {
	case KindEnterInsert:
		s.mode = mode.Insertion
	case KindQuit:
		return Terminate
	}
	return Continue
}

func (s *State) dispatchInsertion(a Action) Result {
	if a.Kind.IsMotion() {
		s.move(a.Kind)
		return Continue
	}

	switch a.Kind {
	case KindEscape:
		s.mode = mode.Navigation
	case KindInsertRune:
		s.insertRune(a.Rune)
	case KindBackspace:
		s.backspace()
	case KindNewline:
		s.newline()
	}
	return Continue
}

func (s *State) insertRune(r rune) {
	if err := s.buf.InsertRune(s.cur.Row, s.cur.Column, r); err != nil {
		return
	}
	s.cur.Column++
}

// backspace deletes the rune before the cursor. At the start of a line the
// line is joined onto the previous one; at the start of the document it
// does nothing.
func (s *State) backspace() {
	if s.cur.Column > 0 {
		if err := s.buf.DeleteRune(s.cur.Row, s.cur.Column-1); err != nil {
			return
		}
		s.cur.Column--
		return
	}
	if s.cur.Row == 0 {
		return
	}

	prevLen, err := s.buf.JoinWithPrevious(s.cur.Row)
	if err != nil {
		return
	}
	s.cur.Row--
	s.cur.Column = prevLen
}

func (s *State) newline() {
	if err := s.buf.SplitLine(s.cur.Row, s.cur.Column); err != nil {
		return
	}
	s.cur.Row++
	s.cur.Column = 0
}

func (s *State) move(k Kind) {
	switch k {
	case KindMoveLeft:
		s.cur = s.cur.Left(s.buf)
	case KindMoveRight:
		s.cur = s.cur.Right(s.buf)
	case KindMoveUp:
		s.cur = s.cur.Up(s.buf)
	case KindMoveDown:
		s.cur = s.cur.Down(s.buf)
	}
}
