// Package mode defines the editing modes of the editor.
//
// There are exactly two modes:
//   - Navigation: keys move the cursor or change mode; text is never mutated
//   - Insertion: keys insert or delete text, or return to Navigation
//
// Navigation is the initial mode. A Mode is a plain tag; the editor decides
// what each key does by switching on (mode, action) pairs.
//
//	┌────────────┐   i   ┌───────────┐
//	│ Navigation │ ────▶ │ Insertion │
//	└────────────┘ ◀──── └───────────┘
//	      │          Esc
//	      q  (quit)
package mode
