package editor

import (
	"fmt"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
)

// Kind identifies an editor action.
type Kind uint8

const (
	// KindNone is an unrecognized input. Dispatching it is a no-op.
	KindNone Kind = iota
	KindEnterInsert
	KindQuit
	KindEscape
	KindInsertRune
	KindBackspace
	KindNewline
	KindMoveLeft
	KindMoveRight
	KindMoveUp
	KindMoveDown
)

var kindNames = [...]string{
	KindNone:        "none",
	KindEnterInsert: "mode.insert",
	KindQuit:        "app.quit",
	KindEscape:      "mode.navigation",
	KindInsertRune:  "editor.insertRune",
	KindBackspace:   "editor.backspace",
	KindNewline:     "editor.newline",
	KindMoveLeft:    "cursor.left",
	KindMoveRight:   "cursor.right",
	KindMoveUp:      "cursor.up",
	KindMoveDown:    "cursor.down",
}

// String returns the action name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsMotion reports whether the action only moves the cursor.
func (k Kind) IsMotion() bool {
	return k >= KindMoveLeft && k <= KindMoveDown
}

// Action is a single editor command. Rune is set for KindInsertRune.
type Action struct {
	Kind Kind
	Rune rune
}

// Keys bound to mode changes in Navigation mode.
const (
	InsertKey = 'i'
	QuitKey   = 'q'
)

// Convenience constructors.
var (
	None        = Action{Kind: KindNone}
	EnterInsert = Action{Kind: KindEnterInsert}
	Quit        = Action{Kind: KindQuit}
	Escape      = Action{Kind: KindEscape}
	Backspace   = Action{Kind: KindBackspace}
	Newline     = Action{Kind: KindNewline}
	MoveLeft    = Action{Kind: KindMoveLeft}
	MoveRight   = Action{Kind: KindMoveRight}
	MoveUp      = Action{Kind: KindMoveUp}
	MoveDown    = Action{Kind: KindMoveDown}
)

// InsertRune returns the action that types r.
func InsertRune(r rune) Action {
	return Action{Kind: KindInsertRune, Rune: r}
}

// String returns a readable form such as "editor.insertRune('x')".
func (a Action) String() string {
	if a.Kind == KindInsertRune {
		return fmt.Sprintf("%s(%q)", a.Kind, a.Rune)
	}
	return a.Kind.String()
}

// Decode maps a key event to the action it means in mode m.
// Unrecognized events decode to None.
func Decode(m mode.Mode, ev key.Event) Action {
	if a, ok := decodeMotion(ev); ok {
		return a
	}

	switch m {
	case mode.Navigation:
		if !ev.IsRune() || ev.IsModified() {
			return None
		}
		switch ev.Rune {
		case InsertKey:
			return EnterInsert
		case QuitKey:
			return Quit
		}

	case mode.Insertion:
		switch ev.Key {
		case key.KeyEscape:
			return Escape
		case key.KeyEnter:
			return Newline
		case key.KeyBackspace:
			return Backspace
		case key.KeyRune:
			if ev.IsRune() && !ev.IsModified() {
				return InsertRune(ev.Rune)
			}
		}
	}

	return None
}

func decodeMotion(ev key.Event) (Action, bool) {
	if ev.IsModified() {
		return None, false
	}
	switch ev.Key {
	case key.KeyLeft:
		return MoveLeft, true
	case key.KeyRight:
		return MoveRight, true
	case key.KeyUp:
		return MoveUp, true
	case key.KeyDown:
		return MoveDown, true
	}
	return None, false
}
