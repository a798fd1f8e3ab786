package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lokomat-fes/lokictl/internal/rehastim"
)

// Column widths
var sessionColumnWidths = []int{7, 10, 10, 9, 34}

// PrintSessionTable prints the stimulation events of a session in a styled
// box table.
func PrintSessionTable(data *rehastim.Data) {
	headers := []string{"EVENT", "START", "DURATION", "STATE", "CHANNELS"}
	events := data.Events()

	// Build table
	var sb strings.Builder

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	for i, w := range sessionColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(sessionColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(TopT))
		}
	}
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		cell := fmt.Sprintf(" %-*s ", sessionColumnWidths[i], truncateStr(h, sessionColumnWidths[i]))
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(BorderStyle.Render(LeftT))
	for i, w := range sessionColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(sessionColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(Cross))
		}
	}
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Data rows
	t0 := data.T0()
	for i, e := range events {
		sb.WriteString(BorderStyle.Render(Vertical))

		// Event number
		cell := fmt.Sprintf(" %-*d ", sessionColumnWidths[0], i+1)
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		// Start offset since t0
		start := fmt.Sprintf("%.2fs", e.Time.Sub(t0).Seconds())
		cell = fmt.Sprintf(" %-*s ", sessionColumnWidths[1], truncateStr(start, sessionColumnWidths[1]))
		sb.WriteString(InfoStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		// Duration
		duration := "-"
		if !e.Open {
			duration = formatSeconds(e.Duration)
		}
		cell = fmt.Sprintf(" %-*s ", sessionColumnWidths[2], truncateStr(duration, sessionColumnWidths[2]))
		sb.WriteString(DurationStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		// State with indicator
		sb.WriteString(formatEventState(e.Open, sessionColumnWidths[3]))
		sb.WriteString(BorderStyle.Render(Vertical))

		// Channels
		cell = fmt.Sprintf(" %-*s ", sessionColumnWidths[4], truncateStr(formatChannels(e), sessionColumnWidths[4]))
		sb.WriteString(ChannelStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	for i, w := range sessionColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(sessionColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(BottomT))
		}
	}
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	// Print the table
	fmt.Print(sb.String())

	// Summary
	printSessionSummary(data)
}

func formatEventState(open bool, width int) string {
	if open {
		text := fmt.Sprintf(" %s %-*s ", "◐", width-3, "open")
		return WarnStyle.Render(text)
	}
	text := fmt.Sprintf(" %s %-*s ", "●", width-3, "done")
	return ActiveStyle.Render(text)
}

func formatChannels(e rehastim.Event) string {
	parts := make([]string, 0, len(e.Channels))
	for _, ch := range e.Channels {
		parts = append(parts, fmt.Sprintf("%d@%.0fmA", ch.Index, ch.Amplitude))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func printSessionSummary(data *rehastim.Data) {
	events := data.Events()
	open := 0
	var total time.Duration
	for _, e := range events {
		if e.Open {
			open++
			continue
		}
		total += e.Duration
	}

	summary := fmt.Sprintf("  %d stimulations (%s total", len(events), formatSeconds(total))
	if open > 0 {
		summary += WarnStyle.Render(fmt.Sprintf(", %d still open", open))
	}
	summary += ")"
	fmt.Println(summary)
}

func truncateStr(s string, max int) string {
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 3 {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max, "...")
}
