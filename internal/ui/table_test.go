package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "quadriceps", 10, "quadriceps"},
		{"ellipsis", "gastrocnemius", 10, "gastroc..."},
		{"tiny width", "channels", 2, "ch"},
		{"multibyte fits", "Gesäß", 10, "Gesäß"},
		{"multibyte cut", "Gesäßmuskel links", 10, "Gesäßmu..."},
		{"wide runes", "左腿刺激通道", 8, "左腿..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateStr(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if runewidth.StringWidth(got) > tt.max {
				t.Errorf("truncateStr(%q, %d) = %q exceeds the display width", tt.in, tt.max, got)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight(%q, 5) = %q", "ab", got)
	}
	if got := padRight("stimulation", 8); got != "stimu..." {
		t.Errorf("padRight(%q, 8) = %q", "stimulation", got)
	}
	// Double-width runes count as two cells.
	if got := padRight("刺激", 6); got != "刺激  " {
		t.Errorf("padRight(%q, 6) = %q", "刺激", got)
	}
}
