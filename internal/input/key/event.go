package key

import (
	"fmt"
	"time"
)

// commandMods are the modifiers that turn a typed character into a chord.
const commandMods = ModCtrl | ModAlt | ModMeta

// Event is one key press read from the terminal.
type Event struct {
	Key       Key
	Rune      rune // set only when Key is KeyRune
	Modifiers Modifier
	Timestamp time.Time
}

// NewEvent stamps a key press with the current time.
func NewEvent(k Key, r rune, mods Modifier) Event {
	return Event{Key: k, Rune: r, Modifiers: mods, Timestamp: time.Now()}
}

// NewRuneEvent is a typed character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return NewEvent(KeyRune, r, mods)
}

// NewSpecialEvent is a named key such as Escape or Left.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return NewEvent(k, 0, mods)
}

// IsRune reports whether the event carries a character.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified reports whether the press is a chord. Shift on a character is
// already folded into the rune, so only Ctrl, Alt and Meta count there.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&commandMods != 0
	}
	return e.Modifiers != ModNone
}

// Equals compares key, rune and modifiers. Timestamps are ignored.
func (e Event) Equals(other Event) bool {
	e.Timestamp, other.Timestamp = time.Time{}, time.Time{}
	return e == other
}

// String renders the press as it would be written in help text:
// "x", "Space", "Ctrl+w", "Escape".
func (e Event) String() string {
	var name string
	switch {
	case e.Key != KeyRune:
		name = e.Key.String()
	case e.Rune == ' ':
		name = "Space"
	default:
		name = string(e.Rune)
	}

	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	if mods != ModNone {
		name = mods.String() + "+" + name
	}
	return name
}

// GoString includes every field for test failure messages.
func (e Event) GoString() string {
	return fmt.Sprintf("key.Event{%s %q %s}", e.Key, e.Rune, e.Modifiers)
}
