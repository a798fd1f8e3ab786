package ui

import "github.com/charmbracelet/lipgloss"

// DefaultSeed is the seed color the console theme is derived from when the
// configuration does not name one.
const DefaultSeed = lipgloss.Color("63")

// Theme is the console palette, derived from a single seed color. Two
// themes built from the same seed are identical.
type Theme struct {
	Seed   lipgloss.Color
	Title  lipgloss.Style
	Accent lipgloss.Style
	Border lipgloss.Style
	Muted  lipgloss.Style
	Hint   lipgloss.Style
}

// NewTheme derives a theme from a seed color. The seed drives the title and
// accent styles; the chrome stays on the shared neutral palette.
func NewTheme(seed lipgloss.Color) Theme {
	if seed == "" {
		seed = DefaultSeed
	}
	return Theme{
		Seed:   seed,
		Title:  lipgloss.NewStyle().Bold(true).Foreground(seed),
		Accent: lipgloss.NewStyle().Foreground(seed),
		Border: BorderStyle,
		Muted:  MutedStyle,
		Hint:   HintStyle,
	}
}
