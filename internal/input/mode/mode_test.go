package mode

import "testing"

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		name string
	}{
		{Navigation, "navigation"},
		{Insertion, "insertion"},
		{Mode(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestInitialIsNavigation(t *testing.T) {
	if Initial != Navigation {
		t.Errorf("Initial = %s, want navigation", Initial)
	}
	var zero Mode
	if zero != Navigation {
		t.Error("zero value should be Navigation")
	}
}
