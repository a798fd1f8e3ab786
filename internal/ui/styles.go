package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lokomat-fes/lokictl/internal/logging"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder   = "240"
	ColorHeader   = "252"
	ColorMuted    = "240"
	ColorHint     = "245"
	ColorChannel  = "81"
	ColorDuration = "214"
	ColorActive   = "82"
	ColorDebug    = "245"
	ColorInfo     = "252"
	ColorWarn     = "214"
	ColorError    = "196"
)

// Shared styles
var (
	BorderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
	ChannelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorChannel))
	DurationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDuration))
	ActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))
	DebugStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDebug))
	InfoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInfo))
	WarnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarn))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
)

// LevelStyle returns the style used for a log line of the given severity.
func LevelStyle(level logging.Level) lipgloss.Style {
	switch level {
	case logging.LevelDebug:
		return DebugStyle
	case logging.LevelWarn:
		return WarnStyle
	case logging.LevelError:
		return ErrorStyle
	default:
		return InfoStyle
	}
}

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}
