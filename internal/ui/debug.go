package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lokomat-fes/lokictl/internal/logging"
)

const (
	minConsoleWidth = 60
	maxConsoleWidth = 120
	minListHeight   = 5
	// Lines of chrome around the log area: borders, title, separator, status bar.
	consoleChrome = 6
)

// recordMsg carries a log record into the update loop.
type recordMsg logging.Record

// DebugConsole is the debug screen of the client: a scrolling view of every
// log record emitted on the process bus. It is the screen behind the
// initial route.
type DebugConsole struct {
	theme Theme
	title string

	ch      chan logging.Record
	records []logging.Record

	termWidth    int
	termHeight   int
	contentWidth int
	listHeight   int
	offset       int
	follow       bool
	quitting     bool
}

// NewDebugConsole creates the debug screen.
func NewDebugConsole(theme Theme, title string) DebugConsole {
	c := DebugConsole{
		theme:      theme,
		title:      title,
		ch:         make(chan logging.Record, 128),
		follow:     true,
		termWidth:  80,
		termHeight: 24,
	}
	c.calculateLayout()
	return c
}

// Sink returns the sink to attach to the log bus. Records arriving while
// the console cannot keep up are dropped rather than blocking the emitter.
func (c DebugConsole) Sink() logging.Sink {
	ch := c.ch
	return logging.FuncSink(func(r logging.Record) {
		select {
		case ch <- r:
		default:
		}
	})
}

func waitForRecord(ch chan logging.Record) tea.Cmd {
	return func() tea.Msg {
		return recordMsg(<-ch)
	}
}

func (c *DebugConsole) calculateLayout() {
	c.contentWidth = c.termWidth - 2
	if c.contentWidth < minConsoleWidth {
		c.contentWidth = minConsoleWidth
	}
	if c.contentWidth > maxConsoleWidth {
		c.contentWidth = maxConsoleWidth
	}

	c.listHeight = c.termHeight - consoleChrome
	if c.listHeight < minListHeight {
		c.listHeight = minListHeight
	}
}

func (c *DebugConsole) maxOffset() int {
	max := len(c.records) - c.listHeight
	if max < 0 {
		max = 0
	}
	return max
}

// Init implements tea.Model
func (c DebugConsole) Init() tea.Cmd {
	return tea.Batch(waitForRecord(c.ch), tea.WindowSize())
}

// Update implements tea.Model
func (c DebugConsole) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.termWidth = msg.Width
		c.termHeight = msg.Height
		c.calculateLayout()
		if c.follow || c.offset > c.maxOffset() {
			c.offset = c.maxOffset()
		}
		return c, nil

	case recordMsg:
		c.records = append(c.records, logging.Record(msg))
		if c.follow {
			c.offset = c.maxOffset()
		}
		return c, waitForRecord(c.ch)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			c.quitting = true
			return c, tea.Quit

		case tea.KeyUp:
			c.follow = false
			if c.offset > 0 {
				c.offset--
			}

		case tea.KeyDown:
			if c.offset < c.maxOffset() {
				c.offset++
			}
			if c.offset == c.maxOffset() {
				c.follow = true
			}

		case tea.KeyPgUp:
			c.follow = false
			c.offset -= c.listHeight
			if c.offset < 0 {
				c.offset = 0
			}

		case tea.KeyPgDown:
			c.offset += c.listHeight
			if c.offset >= c.maxOffset() {
				c.offset = c.maxOffset()
				c.follow = true
			}

		case tea.KeyEnd:
			c.follow = true
			c.offset = c.maxOffset()

		case tea.KeyRunes:
			if string(msg.Runes) == "q" {
				c.quitting = true
				return c, tea.Quit
			}
		}
	}

	return c, nil
}

// View implements tea.Model
func (c DebugConsole) View() string {
	if c.quitting {
		return ""
	}

	var sb strings.Builder
	w := c.contentWidth

	// Top border
	sb.WriteString(c.theme.Border.Render(TopLeft))
	sb.WriteString(c.theme.Border.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(c.theme.Border.Render(TopRight))
	sb.WriteString("\n")

	// Title line
	sb.WriteString(c.theme.Border.Render(Vertical))
	sb.WriteString(c.theme.Title.Render(padRight(" "+c.title, w)))
	sb.WriteString(c.theme.Border.Render(Vertical))
	sb.WriteString("\n")

	// Separator
	sb.WriteString(c.theme.Border.Render(LeftT))
	sb.WriteString(c.theme.Border.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(c.theme.Border.Render(RightT))
	sb.WriteString("\n")

	// Log lines
	visibleEnd := c.offset + c.listHeight
	if visibleEnd > len(c.records) {
		visibleEnd = len(c.records)
	}
	for i := c.offset; i < visibleEnd; i++ {
		sb.WriteString(c.renderRecordRow(c.records[i]))
	}

	// Fill remaining lines if the log is short
	for i := visibleEnd - c.offset; i < c.listHeight; i++ {
		sb.WriteString(c.theme.Border.Render(Vertical))
		sb.WriteString(strings.Repeat(" ", w))
		sb.WriteString(c.theme.Border.Render(Vertical))
		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(c.theme.Border.Render(BottomLeft))
	sb.WriteString(c.theme.Border.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(c.theme.Border.Render(BottomRight))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(c.renderStatusBar())

	return sb.String()
}

func (c DebugConsole) renderRecordRow(r logging.Record) string {
	var sb strings.Builder
	w := c.contentWidth

	sb.WriteString(c.theme.Border.Render(Vertical))
	line := padRight(" "+logging.Format(r), w)
	sb.WriteString(LevelStyle(r.Level).Render(line))
	sb.WriteString(c.theme.Border.Render(Vertical))
	sb.WriteString("\n")

	return sb.String()
}

func (c DebugConsole) renderStatusBar() string {
	var sb strings.Builder
	w := c.contentWidth + 2 // include border width for status bar

	countInfo := fmt.Sprintf("  %d records", len(c.records))
	mode := "scrolling"
	if c.follow {
		mode = "following"
	}
	hintsPlain := fmt.Sprintf("[%s] [↑/↓:scroll] [end:follow] [q:quit]", mode)

	padding := w - len(countInfo) - len([]rune(hintsPlain))
	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(c.theme.Hint.Render(hintsPlain))
	sb.WriteString("\n")

	return sb.String()
}
