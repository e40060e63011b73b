package mode

// Mode is the active editing mode.
type Mode uint8

const (
	// Navigation moves the cursor and switches modes.
	Navigation Mode = iota

	// Insertion mutates text.
	Insertion
)

// Initial is the mode the editor starts in.
const Initial = Navigation

// String returns the mode identifier.
func (m Mode) String() string {
	switch m {
	case Navigation:
		return "navigation"
	case Insertion:
		return "insertion"
	default:
		return "unknown"
	}
}
