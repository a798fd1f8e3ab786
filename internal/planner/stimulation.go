// Package planner decides, tick by tick, which stimulator channels should
// fire based on where the patient is in the gait cycle.
package planner

import (
	"time"

	"github.com/lokomat-fes/lokictl/pkg/types"
)

// CommandKind is the action requested for one channel at one tick.
type CommandKind int

const (
	// Hold leaves the channel as it is: a stimulating channel keeps
	// stimulating, an idle one stays idle.
	Hold CommandKind = iota
	// Start begins stimulating the channel. A zero Duration means the
	// stimulation runs until an explicit Stop.
	Start
	// Stop ends stimulation on the channel.
	Stop
)

// String returns the string representation of a CommandKind.
func (k CommandKind) String() string {
	switch k {
	case Hold:
		return "hold"
	case Start:
		return "start"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Command is the per-channel decision for one tick. Duration is meaningful
// only for Start commands.
type Command struct {
	Kind     CommandKind
	Duration time.Duration
}

// GaitData exposes where each leg currently is in its stride cycle.
type GaitData interface {
	// StrideFraction returns the position within the stride at time t since
	// session start, in [0, 1).
	StrideFraction(t time.Duration, side types.Side) float64
}

// Stimulator is called at every tick of a session and returns one command
// per channel.
type Stimulator interface {
	Tick(t time.Duration, data GaitData) []Command
}

// Condition maps the left and right stride fractions to the desired
// stimulation state of each channel.
type Condition func(left, right float64) []bool

// StrideBased stimulates channels according to a condition over the stride
// cycle. It latches the per-channel state and emits Start or Stop only on
// transitions; between transitions every channel gets Hold.
type StrideBased struct {
	condition Condition
	active    []bool
}

// NewStrideBased creates a stride-based stimulator from a condition function.
func NewStrideBased(condition Condition) *StrideBased {
	return &StrideBased{condition: condition}
}

// Tick implements Stimulator.
func (s *StrideBased) Tick(t time.Duration, data GaitData) []Command {
	left := data.StrideFraction(t, types.Left)
	right := data.StrideFraction(t, types.Right)
	want := s.condition(left, right)
	if s.active == nil {
		s.active = make([]bool, len(want))
	}

	out := make([]Command, len(want))
	for i, w := range want {
		switch {
		case w && !s.active[i]:
			s.active[i] = true
			out[i] = Command{Kind: Start}
		case !w && s.active[i]:
			s.active[i] = false
			out[i] = Command{Kind: Stop}
		default:
			out[i] = Command{Kind: Hold}
		}
	}
	return out
}

// Window is a stride-fraction interval on one side during which a channel
// stimulates. A window with From > To wraps around the end of the stride.
type Window struct {
	Side types.Side
	From float64
	To   float64
}

// Contains reports whether the stride fraction falls inside the window.
func (w Window) Contains(frac float64) bool {
	if w.From <= w.To {
		return frac >= w.From && frac < w.To
	}
	return frac >= w.From || frac < w.To
}

// WindowCondition builds a Condition from one window per channel.
func WindowCondition(windows []Window) Condition {
	return func(left, right float64) []bool {
		out := make([]bool, len(windows))
		for i, w := range windows {
			frac := left
			if w.Side == types.Right {
				frac = right
			}
			out[i] = w.Contains(frac)
		}
		return out
	}
}
