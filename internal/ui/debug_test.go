package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lokomat-fes/lokictl/internal/logging"
)

func TestNewThemeIsDeterministic(t *testing.T) {
	a := NewTheme("63")
	b := NewTheme("63")

	if a.Seed != b.Seed {
		t.Errorf("themes from the same seed should share it, got %q and %q", a.Seed, b.Seed)
	}
	if a.Seed != "63" {
		t.Errorf("expected seed 63, got %q", a.Seed)
	}
}

func TestNewThemeEmptySeedFallsBack(t *testing.T) {
	theme := NewTheme("")
	if theme.Seed != DefaultSeed {
		t.Errorf("expected default seed %q, got %q", DefaultSeed, theme.Seed)
	}
}

func TestDebugConsoleAppendsRecords(t *testing.T) {
	c := NewDebugConsole(NewTheme(DefaultSeed), "Lokomat FES Server Interface")

	r := logging.Record{
		Level:     logging.LevelInfo,
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Message:   "started",
	}
	model, cmd := c.Update(recordMsg(r))
	if cmd == nil {
		t.Error("console should keep waiting for records")
	}

	view := model.View()
	if !strings.Contains(view, "INFO: 2024-01-01T00:00:00: started") {
		t.Errorf("view should show the formatted record, got:\n%s", view)
	}
	if !strings.Contains(view, "Lokomat FES Server Interface") {
		t.Error("view should show the title")
	}
	if !strings.Contains(view, "1 records") {
		t.Error("status bar should count records")
	}
}

func TestDebugConsoleSinkFeedsUpdateLoop(t *testing.T) {
	c := NewDebugConsole(NewTheme(DefaultSeed), "test")

	c.Sink().Handle(logging.Record{Level: logging.LevelWarn, Message: "watch out"})

	select {
	case r := <-c.ch:
		if r.Message != "watch out" {
			t.Errorf("unexpected record %+v", r)
		}
	default:
		t.Fatal("sink should push the record into the console channel")
	}
}

func TestDebugConsoleSinkNeverBlocks(t *testing.T) {
	c := NewDebugConsole(NewTheme(DefaultSeed), "test")
	sink := c.Sink()

	// Overflow the channel; the emitter must not block.
	for i := 0; i < 500; i++ {
		sink.Handle(logging.Record{Level: logging.LevelDebug, Message: "tick"})
	}
}

func TestDebugConsoleFollowTracksTail(t *testing.T) {
	c := NewDebugConsole(NewTheme(DefaultSeed), "test")
	c.termHeight = minListHeight + consoleChrome
	c.calculateLayout()

	var model tea.Model = c
	for i := 0; i < 20; i++ {
		model, _ = model.(DebugConsole).Update(recordMsg(logging.Record{
			Level:   logging.LevelInfo,
			Message: "line",
		}))
	}

	got := model.(DebugConsole)
	if !got.follow {
		t.Error("console should still be following")
	}
	if got.offset != got.maxOffset() {
		t.Errorf("follow should pin the view to the tail, offset %d of %d", got.offset, got.maxOffset())
	}
}

func TestDebugConsoleScrollDisablesFollow(t *testing.T) {
	c := NewDebugConsole(NewTheme(DefaultSeed), "test")
	for i := 0; i < 30; i++ {
		c.records = append(c.records, logging.Record{Level: logging.LevelInfo, Message: "line"})
	}
	c.offset = c.maxOffset()

	model, _ := c.Update(tea.KeyMsg{Type: tea.KeyUp})
	got := model.(DebugConsole)
	if got.follow {
		t.Error("scrolling up should leave follow mode")
	}

	model, _ = got.Update(tea.KeyMsg{Type: tea.KeyEnd})
	got = model.(DebugConsole)
	if !got.follow || got.offset != got.maxOffset() {
		t.Error("end should re-enable follow at the tail")
	}
}

func TestDebugConsoleQuits(t *testing.T) {
	c := NewDebugConsole(NewTheme(DefaultSeed), "test")

	model, cmd := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce a quit message")
	}
	if model.View() != "" {
		t.Error("view should collapse after quitting")
	}
}
