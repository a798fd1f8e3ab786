// Package shell is the root container of the client: it declares the
// display title, derives the color theme from a single seed and registers
// the navigation routes before handing control to the TUI runtime.
package shell

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lokomat-fes/lokictl/internal/logging"
	"github.com/lokomat-fes/lokictl/internal/ui"
)

// DefaultTitle is the display title of the client.
const DefaultTitle = "Lokomat FES Server Interface"

// RouteDebugConsole is the initial route of the client.
const RouteDebugConsole Route = "debug"

// Shell is the root application container.
type Shell struct {
	title   string
	seed    lipgloss.Color
	initial Route
	routes  RouteTable
	bus     *logging.Bus
}

// Option customizes a Shell.
type Option func(*Shell)

// WithTitle overrides the display title.
func WithTitle(title string) Option {
	return func(s *Shell) {
		s.title = title
	}
}

// WithSeed sets the color the theme is derived from.
func WithSeed(seed lipgloss.Color) Option {
	return func(s *Shell) {
		s.seed = seed
	}
}

// WithInitialRoute sets the route activated at startup.
func WithInitialRoute(name Route) Option {
	return func(s *Shell) {
		s.initial = name
	}
}

// WithRoute registers an additional navigation target.
func WithRoute(name Route, factory ScreenFactory) Option {
	return func(s *Shell) {
		s.routes[name] = factory
	}
}

// WithBus sets the log bus the debug console observes.
func WithBus(bus *logging.Bus) Option {
	return func(s *Shell) {
		s.bus = bus
	}
}

// New creates the shell. The debug console is always registered; with no
// options the route table holds exactly that one entry and it is the
// initial route.
func New(opts ...Option) *Shell {
	s := &Shell{
		title:   DefaultTitle,
		seed:    ui.DefaultSeed,
		initial: RouteDebugConsole,
		routes:  RouteTable{},
		bus:     logging.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, ok := s.routes[RouteDebugConsole]; !ok {
		s.routes[RouteDebugConsole] = s.debugConsoleFactory()
	}
	return s
}

// debugConsoleFactory builds the debug screen and attaches its sink to the
// log bus, so every record emitted from then on lands on the console.
func (s *Shell) debugConsoleFactory() ScreenFactory {
	return func() tea.Model {
		console := ui.NewDebugConsole(ui.NewTheme(s.seed), s.title)
		s.bus.Attach(console.Sink())
		return console
	}
}

// Config is the built, immutable description of the shell handed to the
// runtime.
type Config struct {
	Title        string
	Seed         lipgloss.Color
	InitialRoute Route
	Routes       RouteTable
	Theme        ui.Theme
}

// Build produces the shell configuration. It is idempotent and performs no
// I/O: repeated calls yield the same title, the same seed and route tables
// with the same keys.
func (s *Shell) Build() Config {
	routes := make(RouteTable, len(s.routes))
	for name, factory := range s.routes {
		routes[name] = factory
	}
	return Config{
		Title:        s.title,
		Seed:         s.seed,
		InitialRoute: s.initial,
		Routes:       routes,
		Theme:        ui.NewTheme(s.seed),
	}
}

// Run resolves the initial route and hands its screen to the TUI runtime,
// returning when the runtime exits. An initial route missing from the route
// table is fatal to startup.
func (s *Shell) Run() error {
	cfg := s.Build()

	factory, ok := cfg.Routes.Resolve(cfg.InitialRoute)
	if !ok {
		return fmt.Errorf("initial route %q not registered", cfg.InitialRoute)
	}

	p := tea.NewProgram(factory(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running console: %w", err)
	}
	return nil
}
