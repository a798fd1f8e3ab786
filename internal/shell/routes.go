package shell

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// Route names a navigation target.
type Route string

// ScreenFactory builds the screen model behind a route.
type ScreenFactory func() tea.Model

// RouteTable maps route names to screen factories. It is populated at
// startup and handed to the runtime; entries are not added or removed while
// the application runs.
type RouteTable map[Route]ScreenFactory

// Resolve looks up the factory behind a route name.
func (rt RouteTable) Resolve(name Route) (ScreenFactory, bool) {
	f, ok := rt[name]
	return f, ok
}

// Names returns the registered route names, sorted.
func (rt RouteTable) Names() []Route {
	out := make([]Route, 0, len(rt))
	for name := range rt {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
