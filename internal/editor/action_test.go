package editor

import (
	"testing"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		mode mode.Mode
		ev   key.Event
		want Action
	}{
		{"nav i", mode.Navigation, key.NewRuneEvent('i', key.ModNone), EnterInsert},
		{"nav q", mode.Navigation, key.NewRuneEvent('q', key.ModNone), Quit},
		{"nav other rune", mode.Navigation, key.NewRuneEvent('x', key.ModNone), None},
		{"nav ctrl q", mode.Navigation, key.NewRuneEvent('q', key.ModCtrl), None},
		{"nav escape", mode.Navigation, key.NewSpecialEvent(key.KeyEscape, key.ModNone), None},
		{"nav enter", mode.Navigation, key.NewSpecialEvent(key.KeyEnter, key.ModNone), None},
		{"nav left", mode.Navigation, key.NewSpecialEvent(key.KeyLeft, key.ModNone), MoveLeft},
		{"nav down", mode.Navigation, key.NewSpecialEvent(key.KeyDown, key.ModNone), MoveDown},
		{"ins escape", mode.Insertion, key.NewSpecialEvent(key.KeyEscape, key.ModNone), Escape},
		{"ins enter", mode.Insertion, key.NewSpecialEvent(key.KeyEnter, key.ModNone), Newline},
		{"ins backspace", mode.Insertion, key.NewSpecialEvent(key.KeyBackspace, key.ModNone), Backspace},
		{"ins i", mode.Insertion, key.NewRuneEvent('i', key.ModNone), InsertRune('i')},
		{"ins q", mode.Insertion, key.NewRuneEvent('q', key.ModNone), InsertRune('q')},
		{"ins right", mode.Insertion, key.NewSpecialEvent(key.KeyRight, key.ModNone), MoveRight},
		{"ins up", mode.Insertion, key.NewSpecialEvent(key.KeyUp, key.ModNone), MoveUp},
		{"ins tab", mode.Insertion, key.NewSpecialEvent(key.KeyTab, key.ModNone), None},
		{"ins delete", mode.Insertion, key.NewSpecialEvent(key.KeyDelete, key.ModNone), None},
		{"ins shift left", mode.Insertion, key.NewSpecialEvent(key.KeyLeft, key.ModShift), None},
		{"none key", mode.Insertion, key.Event{}, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.mode, tt.ev); got != tt.want {
				t.Errorf("Decode = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{EnterInsert, "mode.insert"},
		{Quit, "app.quit"},
		{MoveLeft, "cursor.left"},
		{InsertRune('x'), "editor.insertRune('x')"},
		{Action{Kind: Kind(200)}, "Kind(200)"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindIsMotion(t *testing.T) {
	for _, k := range []Kind{KindMoveLeft, KindMoveRight, KindMoveUp, KindMoveDown} {
		if !k.IsMotion() {
			t.Errorf("%s should be a motion", k)
		}
	}
	for _, k := range []Kind{KindNone, KindQuit, KindBackspace, KindInsertRune} {
		if k.IsMotion() {
			t.Errorf("%s should not be a motion", k)
		}
	}
}
