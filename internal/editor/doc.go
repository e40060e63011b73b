// Package editor implements the editor state machine: a document, a cursor
// and a mode, mutated one Action at a time.
//
// Input flows through two steps:
//
//	ev := key.NewRuneEvent('i', key.ModNone)
//	action := editor.Decode(state.Mode(), ev)   // what the key means
//	result := state.Dispatch(action)            // apply it
//
// Dispatch never fails and never touches anything outside the State. Quit
// is reported as the Terminate result; the caller owns teardown and exit.
//
// Invariants held after every Dispatch:
//
//   - the document has at least one line
//   - 0 <= Cursor().Row < LineCount()
//   - 0 <= Cursor().Column <= len(Line(Cursor().Row))
package editor
